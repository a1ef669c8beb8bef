package revieweventstore

import (
	"gorm.io/gorm"
	dbmodels "tpo-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ReviewEvent) (id string, err error)
	CreateBatch(list []dbmodels.ReviewEvent) error
	List(entityType, entityID string) (list []dbmodels.ReviewEvent, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ReviewEvent) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateBatch(list []dbmodels.ReviewEvent) error {
	if len(list) == 0 {
		return nil
	}
	return i.db.
		Create(&list).
		Error
}

func (i impl) List(entityType, entityID string) (list []dbmodels.ReviewEvent, err error) {
	list = []dbmodels.ReviewEvent{}
	err = i.db.
		Where("entity_type = ?", entityType).
		Where("entity_id = ?", entityID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
