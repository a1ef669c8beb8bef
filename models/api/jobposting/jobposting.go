package jobpostingapimodels

import (
	"time"

	"github.com/lib/pq"
	"tpo-portal-backend/models"
	apimodels "tpo-portal-backend/models/api"
	dbmodels "tpo-portal-backend/models/db"
)

type CriteriaData struct {
	CgpaMin                float64  `json:"cgpa_min" validate:"gte=0,lte=10"`
	MaxBacklogs            int      `json:"max_backlogs" validate:"gte=0"`
	AllowedBranches        []string `json:"allowed_branches" validate:"min=1,dive,required"`
	AllowedGraduationYears []int64  `json:"allowed_graduation_years" validate:"dive,gte=2000,lte=2100"` // empty for any year
}

func (r CriteriaData) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r CriteriaData) ToDB() dbmodels.EligibilityCriteria {
	return dbmodels.EligibilityCriteria{
		CgpaMin:                r.CgpaMin,
		MaxBacklogs:            r.MaxBacklogs,
		AllowedBranches:        pq.StringArray(r.AllowedBranches),
		AllowedGraduationYears: pq.Int64Array(r.AllowedGraduationYears),
	}
}

type JobPostingData struct {
	Title       string       `json:"title" validate:"required,max=255"`
	Description string       `json:"description"`
	Criteria    CriteriaData `json:"criteria"`
}

func (r JobPostingData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ReviewRequest struct {
	Notes string `json:"notes"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type JobPostingFilter struct {
	apimodels.Pagination
	Status         models.JobPostingStatus `json:"status" validate:"omitempty,oneof=PENDING_APPROVAL ACTIVE REJECTED CLOSED"`
	OrganizationID string                  `json:"organization_id" validate:"omitempty,uuid"`
	Search         string                  `json:"search"` // title
}

func (f JobPostingFilter) Validate() error {
	return apimodels.ValidateStruct(f)
}

type JobPostingView struct {
	ID               string                  `json:"id"`
	CreatedAt        time.Time               `json:"created_at"`
	OrganizationID   string                  `json:"organization_id"`
	OrganizationName string                  `json:"organization_name"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	Status           models.JobPostingStatus `json:"status"`
	Criteria         CriteriaData            `json:"criteria"`
	ReviewedBy       *string                 `json:"reviewed_by"`
	ReviewedAt       *time.Time              `json:"reviewed_at"`
	RejectionReason  string                  `json:"rejection_reason,omitempty"`
}

func JobPostingConvert(rec dbmodels.JobPosting) JobPostingView {
	result := JobPostingView{
		ID:             rec.ID,
		CreatedAt:      rec.CreatedAt,
		OrganizationID: rec.OrganizationID,
		Title:          rec.Title,
		Description:    rec.Description,
		Status:         rec.Status,
		Criteria: CriteriaData{
			CgpaMin:                rec.Criteria.CgpaMin,
			MaxBacklogs:            rec.Criteria.MaxBacklogs,
			AllowedBranches:        rec.Criteria.AllowedBranches,
			AllowedGraduationYears: rec.Criteria.AllowedGraduationYears,
		},
		ReviewedBy:      rec.ReviewedBy,
		ReviewedAt:      rec.ReviewedAt,
		RejectionReason: rec.RejectionReason,
	}
	if rec.Organization != nil {
		result.OrganizationName = rec.Organization.Name
	}
	return result
}

type ReviewEventView struct {
	Action     string    `json:"action"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

func ReviewEventConvert(rec dbmodels.ReviewEvent) ReviewEventView {
	return ReviewEventView{
		Action:     rec.Action,
		FromStatus: rec.FromStatus,
		ToStatus:   rec.ToStatus,
		ActorID:    rec.ActorID,
		Comment:    rec.Comment,
		CreatedAt:  rec.CreatedAt,
	}
}
