package dbmodels

import "tpo-portal-backend/models"

type PushData struct {
	BaseModel
	UserID string                   `gorm:"type:varchar(36);index:idx_user"`
	Code   models.NotificationEvent `gorm:"type:varchar(255);index:idx_event_code"`
	Msg    string
	Title  string
}
