package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"talentflow-backend/controllers"
	"talentflow-backend/lib/analytics"
	apimodels "talentflow-backend/models/api"
	analyticsapimodels "talentflow-backend/models/api/analytics"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Post("dashboard", controller.dashboard)
		router.Post("trend", controller.trend)
		router.Post("export", controller.exportXls)
	})
}

// @Summary Dashboard analytics
// @Tags Analytics
// @Description KPI block, recruitment funnel, source distribution and submission trend
// @Param	body	body	analyticsapimodels.TrendFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.DashboardView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/analytics/dashboard [post]
func (c *analyticsApiController) dashboard(ctx *fiber.Ctx) error {
	var filter analyticsapimodels.TrendFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(analytics.Instance.Dashboard(filter)))
}

// @Summary Submission trend
// @Tags Analytics
// @Description Time-bucketed submission series with source and window filters
// @Param	body	body	analyticsapimodels.TrendFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.TrendPointView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/analytics/trend [post]
func (c *analyticsApiController) trend(ctx *fiber.Ctx) error {
	var filter analyticsapimodels.TrendFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(analytics.Instance.Trend(filter)))
}

// @Summary Export the dashboard to xlsx
// @Tags Analytics
// @Description Download KPI, funnel and trend sheets as an xlsx file
// @Param	body	body	analyticsapimodels.TrendFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/export [post]
func (c *analyticsApiController) exportXls(ctx *fiber.Ctx) error {
	var filter analyticsapimodels.TrendFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := analytics.Instance.DashboardExportToXls(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="dashboard.xlsx"`)
	return ctx.Status(fiber.StatusOK).SendStream(buf)
}
