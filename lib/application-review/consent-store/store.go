package consentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "tpo-portal-backend/models/db"
)

type Provider interface {
	GetLatestGiven(studentProfileID, jobPostingID string) (rec *dbmodels.Consent, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// GetLatestGiven returns the most recent given, non-revoked consent or nil
func (i impl) GetLatestGiven(studentProfileID, jobPostingID string) (*dbmodels.Consent, error) {
	rec := dbmodels.Consent{}
	err := i.db.
		Where("student_profile_id = ?", studentProfileID).
		Where("job_posting_id = ?", jobPostingID).
		Where("given = true").
		Where("revoked = false").
		Order("given_at DESC NULLS LAST").
		Order("created_at DESC").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
