package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"tpo-portal-backend/lib/ratelimit"
)

func TestRateLimit(t *testing.T) {
	newApp := func(limiter ratelimit.Limiter, limit int) *fiber.App {
		app := fiber.New()
		app.Use(RateLimit(limiter, limit, time.Minute))
		app.Get("/ping", func(ctx *fiber.Ctx) error {
			return ctx.SendString("pong")
		})
		return app
	}

	t.Run(`requests over the limit get 429`, func(t *testing.T) {
		app := newApp(ratelimit.NewMemoryLimiter(), 2)
		for i := 0; i < 2; i++ {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
		}
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
		require.Equal(t, "60", resp.Header.Get(fiber.HeaderRetryAfter))
	})

	t.Run(`no limiter passes everything`, func(t *testing.T) {
		app := newApp(nil, 1)
		for i := 0; i < 3; i++ {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
		}
	})
}
