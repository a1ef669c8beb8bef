package dbmodels

import (
	"fmt"
	"gorm.io/gorm"
	"strings"
	"time"
	"tpo-portal-backend/models"
)

type StudentProfile struct {
	BaseModel
	DeletedAt              gorm.DeletedAt `gorm:"index"`
	UserID                 string         `gorm:"type:varchar(36);index"`
	EnrollmentNumber       string         `gorm:"type:varchar(50);uniqueIndex"`
	FirstName              string         `gorm:"type:varchar(255)"`
	LastName               string         `gorm:"type:varchar(255)"`
	Department             string         `gorm:"type:varchar(50);index"`
	GraduationYear         int
	CurrentSemester        int
	Cgpi                   float64
	ActiveBacklogs         bool
	ProfileCompletePercent int
	TpoDeptVerified        bool
	TpoDeptVerifiedBy      *string `gorm:"type:varchar(36)"`
	TpoDeptVerifiedAt      *time.Time
	ProfileStatus          models.ProfileStatus `gorm:"type:varchar(20);index;default:PENDING"`
	ReviewNotes            []ProfileReviewNote  `gorm:"foreignKey:StudentProfileID"`
	SemesterMarks          []SemesterMark       `gorm:"foreignKey:StudentProfileID"`
}

func (r StudentProfile) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

// MatchSearch is a case-insensitive substring match on first name, last name, full name or enrollment number
func (r StudentProfile) MatchSearch(search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, value := range []string{r.FirstName, r.LastName, r.GetFullName(), r.EnrollmentNumber} {
		if strings.Contains(strings.ToLower(value), search) {
			return true
		}
	}
	return false
}

func (r StudentProfile) VerificationBucket() models.VerificationBucket {
	return models.GetVerificationBucket(r.TpoDeptVerified, r.ProfileStatus)
}

// ProfileReviewNote is an append-only entry of the profile review log
type ProfileReviewNote struct {
	BaseModel
	StudentProfileID string               `gorm:"type:varchar(36);index"`
	Action           models.ProfileStatus `gorm:"type:varchar(20)"`
	Comment          string
	ActorID          string `gorm:"type:varchar(36)"`
}

type SemesterMark struct {
	BaseModel
	StudentProfileID string `gorm:"type:varchar(36);index"`
	Semester         int
	Sgpi             float64
	Backlogs         int
}

type Document struct {
	BaseModel
	StudentProfileID string `gorm:"type:varchar(36);index"`
	Title            string `gorm:"type:varchar(255)"`
	StorageKey       string
}
