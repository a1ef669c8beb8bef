package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"tpo-portal-backend/controllers"
	jobposting "tpo-portal-backend/lib/job-posting"
	"tpo-portal-backend/middleware"
	apimodels "tpo-portal-backend/models/api"
	jobpostingapimodels "tpo-portal-backend/models/api/jobposting"
)

type jobPostingApiController struct {
	controllers.BaseAPIController
}

func InitJobPostingApiRouters(app *fiber.App) {
	controller := jobPostingApiController{}
	app.Route("job_postings", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("history", controller.history)
			idRoute.Put("criteria", controller.updateCriteria)
			idRoute.Put("approve", controller.approve) // publish to students
			idRoute.Put("reject", controller.reject)
			idRoute.Put("close", controller.close)
		})
	})
}

// @Summary Create
// @Tags Job posting
// @Description Recruiter creates a posting for the own organization, it waits for admin approval
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobpostingapimodels.JobPostingData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_postings [post]
func (c *jobPostingApiController) create(ctx *fiber.Ctx) error {
	var payload jobpostingapimodels.JobPostingData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := jobposting.Instance.Create(ctx.UserContext(), userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create job posting")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List
// @Tags Job posting
// @Description Postings visible to the caller: own organization for recruiters, active ones for students
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobpostingapimodels.JobPostingFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobpostingapimodels.JobPostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_postings/list [post]
func (c *jobPostingApiController) list(ctx *fiber.Ctx) error {
	var payload jobpostingapimodels.JobPostingFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	list, rowCount, err := jobposting.Instance.List(ctx.UserContext(), userID, middleware.GetUserRole(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load job postings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get by ID
// @Tags Job posting
// @Description Get by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job posting ID"
// @Success 200 {object} apimodels.Response{data=jobpostingapimodels.JobPostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_postings/{id} [get]
func (c *jobPostingApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := jobposting.Instance.Get(ctx.UserContext(), userID, middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load job posting")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Review history
// @Tags Job posting
// @Description Review history
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job posting ID"
// @Success 200 {object} apimodels.Response{data=[]jobpostingapimodels.ReviewEventView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_postings/{id}/history [get]
func (c *jobPostingApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := jobposting.Instance.History(ctx.UserContext(), userID, middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load job posting history")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update eligibility criteria
// @Tags Job posting
// @Description Criteria can be changed until the posting is approved
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job posting ID"
// @Param	body body	 jobpostingapimodels.CriteriaData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_postings/{id}/criteria [put]
func (c *jobPostingApiController) updateCriteria(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload jobpostingapimodels.CriteriaData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = jobposting.Instance.UpdateCriteria(ctx.UserContext(), userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update job posting criteria")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Approve
// @Tags Job posting
// @Description Admin approval, the posting becomes active
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job posting ID"
// @Param	body body	 jobpostingapimodels.ReviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_postings/{id}/approve [put]
func (c *jobPostingApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload jobpostingapimodels.ReviewRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = jobposting.Instance.Approve(ctx.UserContext(), userID, id, payload.Notes)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to approve job posting")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject
// @Tags Job posting
// @Description Admin rejection, reason is required
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job posting ID"
// @Param	body body	 jobpostingapimodels.RejectRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_postings/{id}/reject [put]
func (c *jobPostingApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload jobpostingapimodels.RejectRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = jobposting.Instance.Reject(ctx.UserContext(), userID, id, payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reject job posting")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Close
// @Tags Job posting
// @Description Closes the posting for new applications, allowed to admins and the owning recruiter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job posting ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_postings/{id}/close [put]
func (c *jobPostingApiController) close(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = jobposting.Instance.Close(ctx.UserContext(), userID, middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to close job posting")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
