package fiberlog

import "github.com/sirupsen/logrus"

const defaultMaxBodySize = 4096

// Config is config for middleware
type Config struct {
	// Logger defaults to the logrus standard logger
	Logger *logrus.Logger
	Tags   []string
	// SkipPaths are path prefixes that are not logged (swagger, websocket upgrade)
	SkipPaths []string
	// MaxBodySize truncates logged request and response bodies
	MaxBodySize int
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagUserID,
		RequestID,
	},
	MaxBodySize: defaultMaxBodySize,
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = defaultMaxBodySize
	}
	if len(c.Tags) == 0 {
		c.Tags = ConfigDefault.Tags
	}
	return c
}
