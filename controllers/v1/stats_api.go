package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"tpo-portal-backend/controllers"
	pdfexport "tpo-portal-backend/lib/export/pdf"
	"tpo-portal-backend/lib/statistics"
	"tpo-portal-backend/middleware"
	apimodels "tpo-portal-backend/models/api"
)

type statsApiController struct {
	controllers.BaseAPIController
}

func InitStatsApiRouters(app *fiber.App) {
	controller := statsApiController{}
	app.Route("stats", func(router fiber.Router) {
		router.Get("dashboard", controller.dashboard)
		router.Get("report.pdf", controller.report)
	})
}

// @Summary Dashboard
// @Tags Statistics
// @Description Profile and application counters, campus wide for admins
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=statsapimodels.Dashboard}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/stats/dashboard [get]
func (c *statsApiController) dashboard(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := statistics.Instance.Dashboard(userID, middleware.GetUserRole(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load dashboard")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Dashboard report
// @Tags Statistics
// @Description Dashboard counters as a PDF file
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/stats/report.pdf [get]
func (c *statsApiController) report(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	dashboard, err := statistics.Instance.Dashboard(userID, middleware.GetUserRole(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load dashboard")
	}
	file, err := pdfexport.GenerateReport(pdfexport.ReportFromDashboard(dashboard))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build statistics report")
	}
	fileName := fmt.Sprintf("placement-stats-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(file)
}
