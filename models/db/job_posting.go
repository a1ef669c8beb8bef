package dbmodels

import (
	"github.com/lib/pq"
	"time"
	"tpo-portal-backend/models"
)

type EligibilityCriteria struct {
	CgpaMin                float64
	MaxBacklogs            int
	AllowedBranches        pq.StringArray `gorm:"type:text[]"`
	AllowedGraduationYears pq.Int64Array  `gorm:"type:integer[]"`
}

type JobPosting struct {
	BaseModel
	OrganizationID  string        `gorm:"type:varchar(36);index"`
	Organization    *Organization `gorm:"foreignKey:OrganizationID"`
	Title           string        `gorm:"type:varchar(255)"`
	Description     string
	Status          models.JobPostingStatus `gorm:"type:varchar(30);index"`
	Criteria        EligibilityCriteria     `gorm:"embedded;embeddedPrefix:criteria_"`
	CreatedBy       string                  `gorm:"type:varchar(36)"`
	ReviewedBy      *string                 `gorm:"type:varchar(36)"`
	ReviewedAt      *time.Time
	RejectionReason string
}
