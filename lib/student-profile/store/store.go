package studentprofilestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"tpo-portal-backend/models"
	dbmodels "tpo-portal-backend/models/db"
)

// Filter is the store-level part of a profile query. Zero values are ignored.
type Filter struct {
	Departments    []string
	GraduationYear int
	Semester       int
	CompletionMin  *int
	CompletionMax  *int
}

type StatusCount struct {
	TpoDeptVerified bool
	ProfileStatus   models.ProfileStatus
	Count           int64
}

type Provider interface {
	GetByID(id string) (rec *dbmodels.StudentProfile, err error)
	GetByIDs(ids []string) (list []dbmodels.StudentProfile, err error)
	List(filter Filter) (list []dbmodels.StudentProfile, err error)
	Update(id string, updMap map[string]interface{}) error
	BulkUpdate(ids []string, updMap map[string]interface{}) (rowsAffected int64, err error)
	CountByStatus(departments []string) (list []StatusCount, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.StudentProfile, error) {
	rec := dbmodels.StudentProfile{}
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

func (i impl) GetByIDs(ids []string) (list []dbmodels.StudentProfile, err error) {
	list = []dbmodels.StudentProfile{}
	if len(ids) == 0 {
		return list, nil
	}
	err = i.db.
		Where("id in (?)", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List(filter Filter) (list []dbmodels.StudentProfile, err error) {
	list = []dbmodels.StudentProfile{}
	tx := i.db.Model(dbmodels.StudentProfile{})
	tx = i.addFilter(tx, filter)
	err = tx.
		Order("enrollment_number ASC").
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
		Model(&dbmodels.StudentProfile{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("student profile not updated")
	}
	return nil
}

func (i impl) BulkUpdate(ids []string, updMap map[string]interface{}) (int64, error) {
	if len(ids) == 0 || len(updMap) == 0 {
		return 0, nil
	}
	tx := i.db.
		Model(&dbmodels.StudentProfile{}).
		Where("id in (?)", ids).
		Updates(updMap)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// CountByStatus counts over every department when departments is nil
func (i impl) CountByStatus(departments []string) (list []StatusCount, err error) {
	list = []StatusCount{}
	tx := i.db.
		Model(dbmodels.StudentProfile{}).
		Select("tpo_dept_verified, profile_status, count(*) as count")
	if departments != nil {
		tx = tx.Where("department in (?)", departments)
	}
	err = tx.
		Group("tpo_dept_verified, profile_status").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter Filter) *gorm.DB {
	tx = tx.Where("department in (?)", filter.Departments)
	if filter.GraduationYear > 0 {
		tx = tx.Where("graduation_year = ?", filter.GraduationYear)
	}
	if filter.Semester > 0 {
		tx = tx.Where("current_semester = ?", filter.Semester)
	}
	if filter.CompletionMin != nil {
		tx = tx.Where("profile_complete_percent >= ?", *filter.CompletionMin)
	}
	if filter.CompletionMax != nil {
		tx = tx.Where("profile_complete_percent <= ?", *filter.CompletionMax)
	}
	return tx
}
