package initializers

import (
	log "github.com/sirupsen/logrus"
	"tpo-portal-backend/config"
	"tpo-portal-backend/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.SenderEmail, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
	if !smtp.Instance.IsConfigured() {
		log.Info("SMTP not configured, e-mail notifications disabled")
	}
}
