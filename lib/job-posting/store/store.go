package jobpostingstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tpo-portal-backend/models"
	dbmodels "tpo-portal-backend/models/db"
)

type Filter struct {
	Status         models.JobPostingStatus
	OrganizationID string
	Search         string
	Page           int
	Limit          int
}

type Provider interface {
	Create(rec dbmodels.JobPosting) (id string, err error)
	GetByID(id string) (rec *dbmodels.JobPosting, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter Filter) (list []dbmodels.JobPosting, err error)
	ListCount(filter Filter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobPosting) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.JobPosting, error) {
	rec := dbmodels.JobPosting{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.JobPosting{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("job posting not updated")
	}
	return nil
}

func (i impl) List(filter Filter) (list []dbmodels.JobPosting, err error) {
	list = []dbmodels.JobPosting{}
	tx := i.db.Model(dbmodels.JobPosting{})
	tx = i.addFilter(tx, filter)
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit).Offset((filter.Page - 1) * filter.Limit)
	}
	err = tx.
		Order("created_at DESC").
		Preload("Organization").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter Filter) (count int64, err error) {
	tx := i.db.Model(dbmodels.JobPosting{})
	tx = i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count job postings")
	}
	return count, nil
}

func (i impl) addFilter(tx *gorm.DB, filter Filter) *gorm.DB {
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.OrganizationID != "" {
		tx = tx.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.Search != "" {
		tx = tx.Where("LOWER(title) like ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	return tx
}
