package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"tpo-portal-backend/lib/ratelimit"
	apimodels "tpo-portal-backend/models/api"
)

// RateLimit counts requests per user, or per client ip before authorization
func RateLimit(limiter ratelimit.Limiter, limit int, window time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if limiter == nil || limit <= 0 {
			return ctx.Next()
		}
		key := "ip:" + ctx.IP()
		if userID := GetUserID(ctx); userID != "" {
			key = "user:" + userID
		}
		allowed, err := limiter.Allow(ctx.UserContext(), key, limit, window)
		if err != nil {
			log.WithError(err).WithField("rate_key", key).Warn("rate limiter unavailable, request passed")
		}
		if !allowed {
			ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(window.Seconds())))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(apimodels.NewError("too many requests"))
		}
		return ctx.Next()
	}
}
