package recordsstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "tpo-portal-backend/models/db"
)

// Provider reads the records attached to a student profile
type Provider interface {
	ListSemesterMarks(studentProfileID string) (list []dbmodels.SemesterMark, err error)
	ListDocuments(studentProfileID string) (list []dbmodels.Document, err error)
	ListResumes(studentProfileID string) (list []dbmodels.Resume, err error)
	GetResume(id string) (rec *dbmodels.Resume, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListSemesterMarks(studentProfileID string) (list []dbmodels.SemesterMark, err error) {
	list = []dbmodels.SemesterMark{}
	err = i.db.
		Where("student_profile_id = ?", studentProfileID).
		Order("semester ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListDocuments(studentProfileID string) (list []dbmodels.Document, err error) {
	list = []dbmodels.Document{}
	err = i.db.
		Where("student_profile_id = ?", studentProfileID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListResumes(studentProfileID string) (list []dbmodels.Resume, err error) {
	list = []dbmodels.Resume{}
	err = i.db.
		Where("student_profile_id = ?", studentProfileID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetResume(id string) (*dbmodels.Resume, error) {
	rec := dbmodels.Resume{}
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
