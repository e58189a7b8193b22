package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"talentflow-backend/controllers"
	"talentflow-backend/lib/calendar"
	interviewerprovider "talentflow-backend/lib/dicts/interviewer"
	apimodels "talentflow-backend/models/api"
	calendarapimodels "talentflow-backend/models/api/calendar"
)

type calendarApiController struct {
	controllers.BaseAPIController
}

func InitCalendarApiRouters(app *fiber.App) {
	controller := calendarApiController{}
	app.Route("calendar", func(router fiber.Router) {
		router.Post("slots", controller.slots)
	})
	app.Route("interviewer", func(router fiber.Router) {
		router.Get("list", controller.interviewers)
	})
}

// @Summary Suggest interview slots
// @Tags Calendar
// @Description Advisory list of candidate interview slots for the selected interviewers, at most 10
// @Param	body	body	calendarapimodels.SlotsRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=calendarapimodels.SlotsResponse}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/calendar/slots [post]
func (c *calendarApiController) slots(ctx *fiber.Ctx) error {
	var payload calendarapimodels.SlotsRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	interviewers := interviewerprovider.Instance.GetByIDs(payload.InterviewerIDs)
	slots := calendar.Instance.FindAvailableSlots(interviewers)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(calendarapimodels.SlotsResponse{Slots: slots}))
}

// @Summary List interviewers
// @Tags Calendar
// @Description Static reference list of interviewers
// @Success 200 {object} apimodels.Response{data=[]applicantapimodels.InterviewerView}
// @router /api/v1/interviewer/list [get]
func (c *calendarApiController) interviewers(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(interviewerprovider.Instance.List()))
}
