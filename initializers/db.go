package initializers

import (
	"time"

	"tpo-portal-backend/config"
	"tpo-portal-backend/db"
)

func InitDBConnection(migrate bool) {
	conf := config.Conf.Database
	err := db.Connect(db.Options{
		Host:            conf.Host,
		Port:            conf.Port,
		Name:            conf.Name,
		User:            conf.User,
		Password:        conf.Password,
		SSLMode:         conf.SSLMode,
		MaxOpenConns:    conf.MaxOpenConns,
		MaxIdleConns:    conf.MaxIdleConns,
		ConnMaxLifetime: time.Duration(conf.ConnMaxLifetimeMinutes) * time.Minute,
		Debug:           *conf.DebugMode,
		Migrate:         migrate,
	})
	if err != nil {
		panic(err.Error())
	}
}
