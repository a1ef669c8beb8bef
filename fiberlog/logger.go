package fiberlog

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const requestMessage = "api request"

func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields, len(ftm))
	for k, ft := range ftm {
		value := ft(c, d)
		if strValue, ok := value.(string); ok && strValue == "" {
			continue
		}
		f[k] = value
	}
	return f
}

// New creates a request logging middleware; the level follows the response status
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) != 0 {
		cfg = config[0]
	}
	cfg = cfg.withDefaults()
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions || isSkipped(cfg.SkipPaths, c.Path()) {
			return c.Next()
		}
		d := &data{pid: pid, start: time.Now(), maxBodySize: cfg.MaxBodySize}
		err := c.Next()
		d.end = time.Now()

		entry := cfg.Logger.WithFields(getLogrusFields(ftm, c, d))
		status := c.Response().StatusCode()
		if err != nil {
			// the error handler has not written the response yet
			entry = entry.WithError(err)
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error(requestMessage)
		case status >= fiber.StatusBadRequest:
			entry.Warn(requestMessage)
		default:
			entry.Info(requestMessage)
		}
		return err
	}
}

func isSkipped(prefixes []string, path string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
