package dbmodels

import (
	"github.com/lib/pq"
	"time"
	"tpo-portal-backend/models"
)

type Resume struct {
	BaseModel
	StudentProfileID string `gorm:"type:varchar(36);index"`
	FileName         string `gorm:"type:varchar(255)"`
	StorageKey       string
	SizeBytes        int64
	ContentType      string `gorm:"type:varchar(100)"`
}

type Consent struct {
	BaseModel
	StudentProfileID string `gorm:"type:varchar(36);index"`
	JobPostingID     string `gorm:"type:varchar(36);index"`
	Given            bool
	GivenAt          *time.Time
	ExpiresAt        *time.Time
	Revoked          bool
	DataShared       pq.StringArray `gorm:"type:text[]"`
}

type JobApplication struct {
	BaseModel
	StudentProfileID string                   `gorm:"type:varchar(36);index"`
	StudentProfile   *StudentProfile          `gorm:"foreignKey:StudentProfileID"`
	JobPostingID     string                   `gorm:"type:varchar(36);index"`
	JobPosting       *JobPosting              `gorm:"foreignKey:JobPostingID"`
	ResumeID         *string                  `gorm:"type:varchar(36)"`
	Status           models.ApplicationStatus `gorm:"type:varchar(30);index"`

	DeptReviewedBy  *string `gorm:"type:varchar(36)"`
	DeptReviewedAt  *time.Time
	DeptReviewNotes string

	AdminReviewedBy  *string `gorm:"type:varchar(36)"`
	AdminReviewedAt  *time.Time
	AdminReviewNotes string

	RejectionReason string
	RejectedBy      *string `gorm:"type:varchar(36)"`
	RejectedAt      *time.Time
}

// ReviewEvent is the audit trail of application and job posting transitions
type ReviewEvent struct {
	BaseModel
	EntityType string `gorm:"type:varchar(30);index:idx_review_entity"`
	EntityID   string `gorm:"type:varchar(36);index:idx_review_entity"`
	Action     string `gorm:"type:varchar(30)"`
	FromStatus string `gorm:"type:varchar(30)"`
	ToStatus   string `gorm:"type:varchar(30)"`
	ActorID    string `gorm:"type:varchar(36)"`
	Comment    string
}

const (
	ReviewEntityApplication = "APPLICATION"
	ReviewEntityJobPosting  = "JOB_POSTING"
)
