package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var errNotifyClient = &http.Client{Timeout: 5 * time.Second}

type errNotification struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	RequestID string `json:"request_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Error     string `json:"error"`
}

// ErrNotify posts every 5xx answer to an alerting webhook
func ErrNotify(addr string) fiber.Handler {
	return errNotify(func(n errNotification) {
		if err := postErrNotification(addr, n); err != nil {
			log.WithError(err).Warn("failed to send error notification")
		}
	})
}

func errNotify(send func(n errNotification)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < fiber.StatusInternalServerError {
			return err
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		n := errNotification{
			Code:      statusCode,
			Method:    c.Method(),
			Path:      path,
			RequestID: c.GetRespHeader(fiber.HeaderXRequestID),
			UserID:    GetUserID(c),
			Error:     responseMessage(c.Response().Body()),
		}
		go send(n)
		return err
	}
}

func responseMessage(body []byte) string {
	var data struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &data); err == nil && data.Message != "" {
		return data.Message
	}
	return string(body)
}

func postErrNotification(addr string, n errNotification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return errors.Wrap(err, "failed to encode notification")
	}
	resp, err := errNotifyClient.Post(addr, fiber.MIMEApplicationJSON, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to post notification")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("notification webhook answered %d", resp.StatusCode)
	}
	return nil
}
