package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"tpo-portal-backend/controllers"
	applicationreview "tpo-portal-backend/lib/application-review"
	xlsexport "tpo-portal-backend/lib/export/xls"
	"tpo-portal-backend/middleware"
	apimodels "tpo-portal-backend/models/api"
	applicationapimodels "tpo-portal-backend/models/api/application"
)

type applicationReviewApiController struct {
	controllers.BaseAPIController
}

func InitApplicationReviewApiRouters(app *fiber.App) {
	controller := applicationReviewApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Get("stats", controller.stats)
		router.Put("batch_approve", controller.batchApprove)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("approve", controller.approve)
			idRoute.Put("hold", controller.hold)
			idRoute.Put("reject", controller.reject)
		})
	})
}

// @Summary Department queue
// @Tags Application review
// @Description Applications of students from the coordinator departments, oldest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/applications/list [post]
func (c *applicationReviewApiController) list(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	list, rowCount, err := applicationreview.Instance.ListQueue(ctx.UserContext(), userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load application queue")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Department queue. Export to Excel
// @Tags Application review
// @Description Whole filtered queue as xlsx, pagination is ignored
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/applications/export [post]
func (c *applicationReviewApiController) export(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	list, err := applicationreview.Instance.ExportQueue(ctx.UserContext(), userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load applications for export")
	}
	data, err := xlsexport.Instance.ExportApplicationList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build applications xlsx")
	}
	fileName := fmt.Sprintf("applications-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Review counters
// @Tags Application review
// @Description Application counters over the coordinator departments
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=statsapimodels.ApplicationStats}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/applications/stats [get]
func (c *applicationReviewApiController) stats(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := applicationreview.Instance.Stats(ctx.UserContext(), userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load application statistics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Application detail
// @Tags Application review
// @Description Application with posting, profile, marks, resume link, consent, eligibility and history
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationDetailView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/applications/{id} [get]
func (c *applicationReviewApiController) get(ctx *fiber.Ctx) error {
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

// @Summary Approve
// @Tags Application review
// @Description Department approval, the application goes to the admin queue
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 applicationapimodels.ReviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/applications/{id}/approve [put]
func (c *applicationReviewApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.ReviewRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = applicationreview.Instance.Approve(ctx.UserContext(), userID, id, payload.Notes)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to approve application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Put on hold
// @Tags Application review
// @Description Holds the application until the student fixes the issues
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 applicationapimodels.HoldRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/applications/{id}/hold [put]
func (c *applicationReviewApiController) hold(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.HoldRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = applicationreview.Instance.Hold(ctx.UserContext(), userID, id, payload.Issues)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to put application on hold")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject
// @Tags Application review
// @Description Department rejection, reason is required
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 applicationapimodels.RejectRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/applications/{id}/reject [put]
func (c *applicationReviewApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.RejectRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = applicationreview.Instance.Reject(ctx.UserContext(), userID, id, payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reject application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Batch approve
// @Tags Application review
// @Description Approves up to 100 applications at once, nothing is written when any of them fails the checks
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.BatchApproveRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.BatchApproveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/applications/batch_approve [put]
func (c *applicationReviewApiController) batchApprove(ctx *fiber.Ctx) error {
	var payload applicationapimodels.BatchApproveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	approved, err := applicationreview.Instance.BatchApprove(ctx.UserContext(), userID, payload.ApplicationIDs, payload.Notes)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to batch approve applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationapimodels.BatchApproveResult{Approved: approved}))
}
