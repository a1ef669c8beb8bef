package applicationstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"tpo-portal-backend/models"
	dbmodels "tpo-portal-backend/models/db"
)

// Filter is the coarse, store-level part of a queue query
type Filter struct {
	Statuses     []models.ApplicationStatus
	JobPostingID string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	StudentIDs   []string
}

type Provider interface {
	GetByID(id string) (rec *dbmodels.JobApplication, err error)
	GetByIDs(ids []string) (list []dbmodels.JobApplication, err error)
	// List returns matches ordered by created_at ASC with JobPosting preloaded.
	List(filter Filter) (list []dbmodels.JobApplication, err error)
	Update(id string, updMap map[string]interface{}) error
	BulkUpdate(ids []string, updMap map[string]interface{}) (rowsAffected int64, err error)
	CountByStatus(departments []string) (counts map[models.ApplicationStatus]int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.JobApplication, error) {
	rec := dbmodels.JobApplication{}
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

func (i impl) GetByIDs(ids []string) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	if len(ids) == 0 {
		return list, nil
	}
	err = i.db.
		Where("id in (?)", ids).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List(filter Filter) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	tx := i.db.Model(dbmodels.JobApplication{})
	if len(filter.Statuses) != 0 {
		tx = tx.Where("status in (?)", filter.Statuses)
	}
	if filter.JobPostingID != "" {
		tx = tx.Where("job_posting_id = ?", filter.JobPostingID)
	}
	if filter.CreatedFrom != nil {
		tx = tx.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		tx = tx.Where("created_at <= ?", *filter.CreatedTo)
	}
	if len(filter.StudentIDs) != 0 {
		tx = tx.Where("student_profile_id in (?)", filter.StudentIDs)
	}
	err = tx.
		Order("created_at ASC").
		Preload("JobPosting").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("job application not updated")
	}
	return nil
}

func (i impl) BulkUpdate(ids []string, updMap map[string]interface{}) (int64, error) {
	if len(ids) == 0 || len(updMap) == 0 {
		return 0, nil
	}
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("id in (?)", ids).
		Updates(updMap)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// CountByStatus counts over every department when departments is nil
func (i impl) CountByStatus(departments []string) (map[models.ApplicationStatus]int64, error) {
	counts := map[models.ApplicationStatus]int64{}
	type row struct {
		Status models.ApplicationStatus
		Count  int64
	}
	rows := []row{}
	tx := i.db.
		Model(dbmodels.JobApplication{}).
		Select("job_applications.status, count(*) as count").
		Joins("join student_profiles as sp on sp.id = job_applications.student_profile_id and sp.deleted_at is null")
	if departments != nil {
		tx = tx.Where("sp.department in (?)", departments)
	}
	err := tx.
		Group("job_applications.status").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	for _, item := range rows {
		counts[item.Status] = item.Count
	}
	return counts, nil
}
