package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	apimodels "tpo-portal-backend/models/api"
)

// WithBodyLimit answers 413 when the declared or received body is larger than limit bytes
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		size := int64(c.Request().Header.ContentLength())
		if size < 0 {
			// chunked upload, the length is only known after reading
			size = int64(len(c.Body()))
		}
		if limit > 0 && size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(apimodels.NewError(
				fmt.Sprintf("request body too large, maximum allowed: %d bytes", limit)))
		}
		return c.Next()
	}
}
