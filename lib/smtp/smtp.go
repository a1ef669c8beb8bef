package smtp

import (
	"bytes"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

var Instance Provider

type Provider interface {
	SendEMail(to, subject, message string) error
	IsConfigured() bool
}

func Connect(user, password, host, port, senderEmail string, tlsEnabled bool) error {
	if senderEmail == "" {
		senderEmail = user
	}
	Instance = &impl{
		user:        user,
		password:    password,
		host:        host,
		port:        port,
		senderEmail: senderEmail,
		tlsEnabled:  tlsEnabled,
	}
	return nil
}

type impl struct {
	user        string
	password    string
	host        string
	port        string
	senderEmail string
	tlsEnabled  bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, subject, message string) (err error) {
	logger := log.WithField("recipient", to)
	if !i.IsConfigured() {
		logger.Warn("email not sent, smtp client is not configured")
		return nil
	}
	body, err := composeMessage(i.senderEmail, to, subject, message)
	if err != nil {
		return err
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	addr := i.host + ":" + i.port
	if i.tlsEnabled {
		err = smtp.SendMailTLS(addr, auth, i.senderEmail, []string{to}, bytes.NewReader(body))
	} else {
		err = smtp.SendMail(addr, auth, i.senderEmail, []string{to}, bytes.NewReader(body))
	}
	if err != nil {
		logger.WithError(err).Error("failed to send email")
		return err
	}
	logger.Info("email sent")
	return nil
}

func composeMessage(from, to, subject, message string) ([]byte, error) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "TPO Portal - "+subject)
	msg.SetBody("text/plain", message)
	buf := bytes.Buffer{}
	if _, err := msg.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to compose email")
	}
	return buf.Bytes(), nil
}
