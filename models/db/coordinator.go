package dbmodels

import "github.com/lib/pq"

type Coordinator struct {
	BaseModel
	UserID                 string         `gorm:"type:varchar(36);uniqueIndex"`
	User                   *User          `gorm:"foreignKey:UserID"`
	PrimaryDepartment      string         `gorm:"type:varchar(50)"`
	AssignedDepartments    pq.StringArray `gorm:"type:text[]"`
	CanVerifyProfiles      bool
	CanProcessApplications bool
	IsActive               bool `gorm:"default:true"`
}
