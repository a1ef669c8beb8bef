package initializers

import (
	log "github.com/sirupsen/logrus"
	"tpo-portal-backend/fiberlog"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

// InitLogger configures the package logger and returns the access log config.
// Access logs are written at info and above whatever the application level is.
func InitLogger(level string) *fiberlog.Config {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		logLevel = log.InfoLevel
	}
	log.SetFormatter(jsonFormatter())
	log.SetLevel(logLevel)
	if err != nil {
		log.WithError(err).WithField("level", level).Warn("unknown log level, info is used")
	}

	accessLogger := log.New()
	accessLogger.SetFormatter(jsonFormatter())
	accessLogger.SetLevel(log.InfoLevel)
	return &fiberlog.Config{
		Logger: accessLogger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagIP,
			fiberlog.TagUserID,
			fiberlog.RequestID,
			fiberlog.TagBody,
			fiberlog.TagResBody,
		},
		SkipPaths:   []string{"/api/v1/ws"},
		MaxBodySize: 8192,
	}
}
