package coordinatorstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "tpo-portal-backend/models/db"
)

type Provider interface {
	GetByUserID(userID string) (rec *dbmodels.Coordinator, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByUserID(userID string) (*dbmodels.Coordinator, error) {
	rec := dbmodels.Coordinator{}
	err := i.db.
		Where("user_id = ?", userID).
		Preload("User").
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
