package dbmodels

import (
	"fmt"
	"tpo-portal-backend/models"
)

type User struct {
	BaseModel
	FirstName string          `gorm:"type:varchar(255)"`
	LastName  string          `gorm:"type:varchar(255)"`
	Email     string          `gorm:"type:varchar(255);uniqueIndex"`
	Role      models.UserRole `gorm:"type:varchar(50)"`
	IsActive  bool            `gorm:"default:true"`
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
