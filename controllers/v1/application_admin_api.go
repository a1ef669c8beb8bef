package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"tpo-portal-backend/controllers"
	applicationreview "tpo-portal-backend/lib/application-review"
	"tpo-portal-backend/middleware"
	apimodels "tpo-portal-backend/models/api"
	applicationapimodels "tpo-portal-backend/models/api/application"
)

type applicationAdminApiController struct {
	controllers.BaseAPIController
}

func InitApplicationAdminApiRouters(app *fiber.App) {
	controller := applicationAdminApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("forward", controller.forward)
			idRoute.Put("reject", controller.reject)
			idRoute.Put("reopen", controller.reopen)
		})
	})
}

// @Summary Admin queue
// @Tags Application admin
// @Description Department approved applications awaiting the admin decision, oldest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/applications/list [post]
func (c *applicationAdminApiController) list(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := applicationreview.Instance.ListAdminQueue(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load admin queue")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Application detail
// @Tags Application admin
// @Description Application detail without department scope
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationDetailView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/applications/{id} [get]
func (c *applicationAdminApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := applicationreview.Instance.GetDetail(ctx.UserContext(), userID, middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Forward to recruiter
// @Tags Application admin
// @Description Final approval, the application becomes visible to the recruiter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 applicationapimodels.ReviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/applications/{id}/forward [put]
func (c *applicationAdminApiController) forward(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.ReviewRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = applicationreview.Instance.Forward(ctx.UserContext(), userID, id, payload.Notes)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to forward application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject
// @Tags Application admin
// @Description Admin rejection of a department approved application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 applicationapimodels.RejectRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/applications/{id}/reject [put]
func (c *applicationAdminApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.RejectRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = applicationreview.Instance.AdminReject(ctx.UserContext(), userID, id, payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reject application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reopen
// @Tags Application admin
// @Description Returns a rejected application to the department queue
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 applicationapimodels.ReviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/applications/{id}/reopen [put]
func (c *applicationAdminApiController) reopen(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.ReviewRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = applicationreview.Instance.ReopenRejected(ctx.UserContext(), userID, id, payload.Notes)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reopen application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
