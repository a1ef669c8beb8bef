package recruiterstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "tpo-portal-backend/models/db"
)

type Provider interface {
	GetByUserID(userID string) (rec *dbmodels.Recruiter, err error)
	ListByOrganization(organizationID string) (list []dbmodels.Recruiter, err error)
	GetOrganization(id string) (rec *dbmodels.Organization, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByUserID(userID string) (*dbmodels.Recruiter, error) {
	rec := dbmodels.Recruiter{}
	err := i.db.
		Where("user_id = ?", userID).
		Preload("Organization").
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

func (i impl) ListByOrganization(organizationID string) (list []dbmodels.Recruiter, err error) {
	list = []dbmodels.Recruiter{}
	err = i.db.
		Where("organization_id = ?", organizationID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetOrganization(id string) (*dbmodels.Organization, error) {
	rec := dbmodels.Organization{}
	err := i.db.
		Where("id = ?", id).
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
