package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"tpo-portal-backend/controllers"
	"tpo-portal-backend/lib/rbac"
	"tpo-portal-backend/middleware"
	"tpo-portal-backend/models"
	apimodels "tpo-portal-backend/models/api"
	accountapimodels "tpo-portal-backend/models/api/account"
)

type accountApiController struct {
	controllers.BaseAPIController
}

func InitAccountApiRouters(app *fiber.App) {
	controller := accountApiController{}
	app.Route("me", func(router fiber.Router) {
		router.Get("permissions", controller.permissions)
	})
}

// @Summary Current user permissions
// @Tags Account
// @Description Modules and permissions of the role from the token, used by the UI to hide actions
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=accountapimodels.PermissionsView}
// @Failure 403
// @router /api/v1/me/permissions [get]
func (c *accountApiController) permissions(ctx *fiber.Ctx) error {
	role := middleware.GetUserRole(ctx)
	permissions := rbac.Instance.GetPermissions(role)
	if permissions == nil {
		permissions = map[models.Module][]models.Permission{}
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(accountapimodels.PermissionsView{
		UserID:      middleware.GetUserID(ctx),
		Role:        role,
		Permissions: permissions,
	}))
}
