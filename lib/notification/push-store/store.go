package pushdatastore

import (
	"time"

	"gorm.io/gorm"
	dbmodels "tpo-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.PushData) error
	List(userID string) ([]dbmodels.PushData, error)
	Delete(ids []string) error
	DeleteOlderThan(moment time.Time) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PushData) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) List(userID string) (list []dbmodels.PushData, err error) {
	tx := i.db.Model(dbmodels.PushData{})
	err = tx.
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.Delete(&dbmodels.PushData{}, ids).Error
}

func (i impl) DeleteOlderThan(moment time.Time) (int64, error) {
	tx := i.db.
		Where("created_at < ?", moment).
		Delete(&dbmodels.PushData{})
	return tx.RowsAffected, tx.Error
}
