package profileapimodels

import (
	"time"

	"tpo-portal-backend/models"
	apimodels "tpo-portal-backend/models/api"
	dbmodels "tpo-portal-backend/models/db"
)

type ProfileFilter struct {
	apimodels.Pagination
	Status         models.VerificationBucket `json:"status" validate:"omitempty,oneof=PENDING VERIFIED REJECTED"` // verification bucket
	CompletionMin  *int                      `json:"completion_min" validate:"omitempty,gte=0,lte=100"`
	CompletionMax  *int                      `json:"completion_max" validate:"omitempty,gte=0,lte=100"`
	GraduationYear int                       `json:"graduation_year" validate:"gte=0"`
	Semester       int                       `json:"semester" validate:"gte=0,lte=12"`
	Search         string                    `json:"search"` // name or enrollment number
}

func (f ProfileFilter) Validate() error {
	return apimodels.ValidateStruct(f)
}

type VerifyRequest struct {
	Notes string `json:"notes"`
}

type HoldRequest struct {
	Issues string `json:"issues"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type BatchVerifyRequest struct {
	StudentIDs []string `json:"student_ids" validate:"dive,uuid"`
	Notes      string   `json:"notes"`
}

func (r BatchVerifyRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type BatchVerifyResult struct {
	Verified int `json:"verified"`
}

type ProfileView struct {
	ID                     string                    `json:"id"`
	EnrollmentNumber       string                    `json:"enrollment_number"`
	FirstName              string                    `json:"first_name"`
	LastName               string                    `json:"last_name"`
	Department             string                    `json:"department"`
	GraduationYear         int                       `json:"graduation_year"`
	CurrentSemester        int                       `json:"current_semester"`
	Cgpi                   float64                   `json:"cgpi"`
	ActiveBacklogs         bool                      `json:"active_backlogs"`
	ProfileCompletePercent int                       `json:"profile_complete_percent"`
	TpoDeptVerified        bool                      `json:"tpo_dept_verified"`
	TpoDeptVerifiedBy      *string                   `json:"tpo_dept_verified_by"`
	TpoDeptVerifiedAt      *time.Time                `json:"tpo_dept_verified_at"`
	ProfileStatus          models.ProfileStatus      `json:"profile_status"`
	VerificationBucket     models.VerificationBucket `json:"verification_bucket"`
}

func ProfileConvert(rec dbmodels.StudentProfile) ProfileView {
	return ProfileView{
		ID:                     rec.ID,
		EnrollmentNumber:       rec.EnrollmentNumber,
		FirstName:              rec.FirstName,
		LastName:               rec.LastName,
		Department:             rec.Department,
		GraduationYear:         rec.GraduationYear,
		CurrentSemester:        rec.CurrentSemester,
		Cgpi:                   rec.Cgpi,
		ActiveBacklogs:         rec.ActiveBacklogs,
		ProfileCompletePercent: rec.ProfileCompletePercent,
		TpoDeptVerified:        rec.TpoDeptVerified,
		TpoDeptVerifiedBy:      rec.TpoDeptVerifiedBy,
		TpoDeptVerifiedAt:      rec.TpoDeptVerifiedAt,
		ProfileStatus:          rec.ProfileStatus,
		VerificationBucket:     rec.VerificationBucket(),
	}
}

// ListStats aggregates over the whole filtered set, before pagination
type ListStats struct {
	Total             int     `json:"total"`
	Pending           int     `json:"pending"`
	Verified          int     `json:"verified"`
	Rejected          int     `json:"rejected"`
	AverageCompletion float64 `json:"average_completion"`
}

type ProfileListResult struct {
	List  []ProfileView `json:"list"`
	Stats ListStats     `json:"stats"`
}

type ReviewNoteView struct {
	ID        string               `json:"id"`
	Action    models.ProfileStatus `json:"action"`
	Comment   string               `json:"comment"`
	ActorID   string               `json:"actor_id"`
	CreatedAt time.Time            `json:"created_at"`
}

func ReviewNoteConvert(rec dbmodels.ProfileReviewNote) ReviewNoteView {
	return ReviewNoteView{
		ID:        rec.ID,
		Action:    rec.Action,
		Comment:   rec.Comment,
		ActorID:   rec.ActorID,
		CreatedAt: rec.CreatedAt,
	}
}

type SemesterMarkView struct {
	Semester int     `json:"semester"`
	Sgpi     float64 `json:"sgpi"`
	Backlogs int     `json:"backlogs"`
}

func SemesterMarksConvert(list []dbmodels.SemesterMark) []SemesterMarkView {
	result := make([]SemesterMarkView, 0, len(list))
	for _, rec := range list {
		result = append(result, SemesterMarkView{
			Semester: rec.Semester,
			Sgpi:     rec.Sgpi,
			Backlogs: rec.Backlogs,
		})
	}
	return result
}

type ResumeView struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type"`
	DownloadURL string `json:"download_url,omitempty"`
}

func ResumeConvert(rec dbmodels.Resume) ResumeView {
	return ResumeView{
		ID:          rec.ID,
		FileName:    rec.FileName,
		SizeBytes:   rec.SizeBytes,
		ContentType: rec.ContentType,
	}
}

type DocumentView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ProfileDetailView struct {
	ProfileView
	SemesterMarks []SemesterMarkView `json:"semester_marks"`
	Resumes       []ResumeView       `json:"resumes"`
	Documents     []DocumentView     `json:"documents"`
	ReviewNotes   []ReviewNoteView   `json:"review_notes"`
}
