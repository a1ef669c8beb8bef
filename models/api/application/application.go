package applicationapimodels

import (
	"time"

	"tpo-portal-backend/lib/eligibility"
	"tpo-portal-backend/models"
	apimodels "tpo-portal-backend/models/api"
	jobpostingapimodels "tpo-portal-backend/models/api/jobposting"
	profileapimodels "tpo-portal-backend/models/api/profile"
	dbmodels "tpo-portal-backend/models/db"
)

type ApplicationFilter struct {
	apimodels.Pagination
	Status       models.ApplicationStatus `json:"status" validate:"omitempty,oneof=SUBMITTED PENDING_ADMIN FORWARDED HOLD REJECTED"` // SUBMITTED when empty
	JobPostingID string                   `json:"job_posting_id" validate:"omitempty,uuid"`
	CreatedFrom  *time.Time               `json:"created_from"`
	CreatedTo    *time.Time               `json:"created_to"`
	CgpaMin      *float64                 `json:"cgpa_min" validate:"omitempty,gte=0,lte=10"`
	CgpaMax      *float64                 `json:"cgpa_max" validate:"omitempty,gte=0,lte=10"`
	Search       string                   `json:"search"` // student name or enrollment number
}

func (f ApplicationFilter) Validate() error {
	return apimodels.ValidateStruct(f)
}

type ReviewRequest struct {
	Notes string `json:"notes"`
}

type HoldRequest struct {
	Issues string `json:"issues"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type BatchApproveRequest struct {
	ApplicationIDs []string `json:"application_ids" validate:"dive,uuid"`
	Notes          string   `json:"notes"`
}

func (r BatchApproveRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type BatchApproveResult struct {
	Approved int `json:"approved"`
}

type StudentShortView struct {
	ID               string  `json:"id"`
	EnrollmentNumber string  `json:"enrollment_number"`
	FullName         string  `json:"full_name"`
	Department       string  `json:"department"`
	GraduationYear   int     `json:"graduation_year"`
	Cgpi             float64 `json:"cgpi"`
	ActiveBacklogs   bool    `json:"active_backlogs"`
	TpoDeptVerified  bool    `json:"tpo_dept_verified"`
}

type ApplicationView struct {
	ID               string                   `json:"id"`
	CreatedAt        time.Time                `json:"created_at"`
	Status           models.ApplicationStatus `json:"status"`
	JobPostingID     string                   `json:"job_posting_id"`
	JobTitle         string                   `json:"job_title"`
	Student          *StudentShortView        `json:"student"`
	DeptReviewedBy   *string                  `json:"dept_reviewed_by"`
	DeptReviewedAt   *time.Time               `json:"dept_reviewed_at"`
	DeptReviewNotes  string                   `json:"dept_review_notes,omitempty"`
	AdminReviewedBy  *string                  `json:"admin_reviewed_by"`
	AdminReviewedAt  *time.Time               `json:"admin_reviewed_at"`
	AdminReviewNotes string                   `json:"admin_review_notes,omitempty"`
	RejectionReason  string                   `json:"rejection_reason,omitempty"`
	RejectedAt       *time.Time               `json:"rejected_at"`
}

func ApplicationConvert(rec dbmodels.JobApplication, student *dbmodels.StudentProfile) ApplicationView {
	result := ApplicationView{
		ID:               rec.ID,
		CreatedAt:        rec.CreatedAt,
		Status:           rec.Status,
		JobPostingID:     rec.JobPostingID,
		DeptReviewedBy:   rec.DeptReviewedBy,
		DeptReviewedAt:   rec.DeptReviewedAt,
		DeptReviewNotes:  rec.DeptReviewNotes,
		AdminReviewedBy:  rec.AdminReviewedBy,
		AdminReviewedAt:  rec.AdminReviewedAt,
		AdminReviewNotes: rec.AdminReviewNotes,
		RejectionReason:  rec.RejectionReason,
		RejectedAt:       rec.RejectedAt,
	}
	if rec.JobPosting != nil {
		result.JobTitle = rec.JobPosting.Title
	}
	if student != nil {
		result.Student = &StudentShortView{
			ID:               student.ID,
			EnrollmentNumber: student.EnrollmentNumber,
			FullName:         student.GetFullName(),
			Department:       student.Department,
			GraduationYear:   student.GraduationYear,
			Cgpi:             student.Cgpi,
			ActiveBacklogs:   student.ActiveBacklogs,
			TpoDeptVerified:  student.TpoDeptVerified,
		}
	}
	return result
}

type ConsentView struct {
	GivenAt    *time.Time `json:"given_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
	DataShared []string   `json:"data_shared"`
}

func ConsentConvert(rec *dbmodels.Consent) *ConsentView {
	if rec == nil {
		return nil
	}
	return &ConsentView{
		GivenAt:    rec.GivenAt,
		ExpiresAt:  rec.ExpiresAt,
		DataShared: rec.DataShared,
	}
}

type ApplicationDetailView struct {
	ApplicationView
	JobPosting    *jobpostingapimodels.JobPostingView   `json:"job_posting"`
	Profile       profileapimodels.ProfileView          `json:"profile"`
	SemesterMarks []profileapimodels.SemesterMarkView   `json:"semester_marks"`
	Resume        *profileapimodels.ResumeView          `json:"resume"`
	Consent       *ConsentView                          `json:"consent"`
	Eligibility   eligibility.Result                    `json:"eligibility"`
	History       []jobpostingapimodels.ReviewEventView `json:"history"`
}
