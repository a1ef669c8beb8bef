package dbmodels

type Organization struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"`
	Website  string `gorm:"type:varchar(255)"`
	Industry string `gorm:"type:varchar(255)"`
}

type Recruiter struct {
	BaseModel
	UserID         string        `gorm:"type:varchar(36);uniqueIndex"`
	User           *User         `gorm:"foreignKey:UserID"`
	OrganizationID string        `gorm:"type:varchar(36);index"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID"`
}
