package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"tpo-portal-backend/controllers"
	xlsexport "tpo-portal-backend/lib/export/xls"
	profileverification "tpo-portal-backend/lib/profile-verification"
	"tpo-portal-backend/middleware"
	apimodels "tpo-portal-backend/models/api"
	profileapimodels "tpo-portal-backend/models/api/profile"
)

type profileVerificationApiController struct {
	controllers.BaseAPIController
}

func InitProfileVerificationApiRouters(app *fiber.App) {
	controller := profileVerificationApiController{}
	app.Route("profiles", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Get("stats", controller.stats)
		router.Put("batch_verify", controller.batchVerify)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("verify", controller.verify)
			idRoute.Put("hold", controller.hold)
			idRoute.Put("reject", controller.reject)
		})
	})
}

// @Summary Candidate list
// @Tags Profile verification
// @Description Students of the coordinator departments, unverified first, with aggregates over the filtered set
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.ProfileFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]profileapimodels.ProfileView,stats=profileapimodels.ListStats}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/profiles/list [post]
func (c *profileVerificationApiController) list(ctx *fiber.Ctx) error {
	var payload profileapimodels.ProfileFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	result, rowCount, err := profileverification.Instance.ListCandidates(ctx.UserContext(), userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load candidate list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewStatsScrollerResponse(result.List, rowCount, result.Stats))
}

// @Summary Candidate list. Export to Excel
// @Tags Profile verification
// @Description Whole filtered candidate list as xlsx, pagination is ignored
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.ProfileFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/profiles/export [post]
func (c *profileVerificationApiController) export(ctx *fiber.Ctx) error {
	var payload profileapimodels.ProfileFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	list, err := profileverification.Instance.ExportCandidates(ctx.UserContext(), userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load candidates for export")
	}
	data, err := xlsexport.Instance.ExportCandidateList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build candidates xlsx")
	}
	fileName := fmt.Sprintf("candidates-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Verification counters
// @Tags Profile verification
// @Description Profile counters over the coordinator departments
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=statsapimodels.ProfileStats}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/profiles/stats [get]
func (c *profileVerificationApiController) stats(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := profileverification.Instance.Stats(ctx.UserContext(), userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load profile statistics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Student detail
// @Tags Profile verification
// @Description Profile with semester marks, resumes, documents and review notes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "student profile ID"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileDetailView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/profiles/{id} [get]
func (c *profileVerificationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := profileverification.Instance.GetDetail(ctx.UserContext(), userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load student profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Verify
// @Tags Profile verification
// @Description Marks the profile verified, completion must be at least 80%
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "student profile ID"
// @Param	body body	 profileapimodels.VerifyRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/profiles/{id}/verify [put]
func (c *profileVerificationApiController) verify(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload profileapimodels.VerifyRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = profileverification.Instance.Verify(ctx.UserContext(), userID, id, payload.Notes)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to verify student profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Put on hold
// @Tags Profile verification
// @Description Sends the profile back to the student with the issues to fix
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "student profile ID"
// @Param	body body	 profileapimodels.HoldRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/profiles/{id}/hold [put]
func (c *profileVerificationApiController) hold(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload profileapimodels.HoldRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = profileverification.Instance.Hold(ctx.UserContext(), userID, id, payload.Issues)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to put student profile on hold")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject
// @Tags Profile verification
// @Description Rejects the profile, reason is required
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "student profile ID"
// @Param	body body	 profileapimodels.RejectRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/profiles/{id}/reject [put]
func (c *profileVerificationApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload profileapimodels.RejectRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = profileverification.Instance.Reject(ctx.UserContext(), userID, id, payload.Reason)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reject student profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Batch verify
// @Tags Profile verification
// @Description Verifies up to 50 profiles at once, nothing is written when any of them fails the checks
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.BatchVerifyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=profileapimodels.BatchVerifyResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/coordinator/profiles/batch_verify [put]
func (c *profileVerificationApiController) batchVerify(ctx *fiber.Ctx) error {
	var payload profileapimodels.BatchVerifyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	verified, err := profileverification.Instance.BatchVerify(ctx.UserContext(), userID, payload.StudentIDs, payload.Notes)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to batch verify student profiles")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(profileapimodels.BatchVerifyResult{Verified: verified}))
}
