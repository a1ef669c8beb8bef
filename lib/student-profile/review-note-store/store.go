package reviewnotestore

import (
	"gorm.io/gorm"
	dbmodels "tpo-portal-backend/models/db"
)

// Provider has no update or delete: the review log is append-only
type Provider interface {
	Create(rec dbmodels.ProfileReviewNote) (id string, err error)
	CreateBatch(list []dbmodels.ProfileReviewNote) error
	List(studentProfileID string) (list []dbmodels.ProfileReviewNote, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ProfileReviewNote) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateBatch(list []dbmodels.ProfileReviewNote) error {
	if len(list) == 0 {
		return nil
	}
	return i.db.
		Create(&list).
		Error
}

func (i impl) List(studentProfileID string) (list []dbmodels.ProfileReviewNote, err error) {
	list = []dbmodels.ProfileReviewNote{}
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
