package fiberlog

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	authutils "tpo-portal-backend/lib/utils/auth-utils"
)

const (
	TagPid     = "pid"
	TagStatus  = "status"
	TagLatency = "latency"
	TagMethod  = "method"
	TagPath    = "path"
	TagIP      = "ip"
	TagUserID  = "user_id"
	TagBody    = "body"
	TagResBody = "res_body"
	RequestID  = "request_id"
)

// data is collected per request
type data struct {
	pid         int
	start       time.Time
	end         time.Time
	maxBodySize int
}

type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagUserID: func(c *fiber.Ctx, _ *data) interface{} {
			if sub, ok := authutils.GetClaims(c)["sub"].(string); ok {
				return sub
			}
			return ""
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			return truncate(string(c.Body()), d.maxBodySize)
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			// file exports are not logged
			if !strings.HasPrefix(string(c.Response().Header.ContentType()), fiber.MIMEApplicationJSON) {
				return ""
			}
			return truncate(string(c.Response().Body()), d.maxBodySize)
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func truncate(value string, limit int) string {
	if len(value) > limit {
		return value[:limit] + "..."
	}
	return value
}
