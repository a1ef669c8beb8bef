package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"tpo-portal-backend/lib/rbac"
)

const rbacForbidden = "RBAC_FORBIDDEN"

// RbacMiddleware checks the route rule table; routes without a rule only need a valid identity
func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		userRole := GetUserRole(ctx)
		if userID == "" || userRole == "" {
			return forbidden(ctx)
		}
		handler, found := rbac.Instance.GetRuleFunc(ctx.Method(), ctx.Path())
		if found && !handler(userID, userRole, ctx.Path()) {
			log.
				WithField("user_id", userID).
				WithField("user_role", userRole).
				WithField("path", ctx.Path()).
				Info("access denied by rbac rule")
			return forbidden(ctx)
		}
		return ctx.Next()
	}
}

func forbidden(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": rbacForbidden,
	})
}
