package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"talentflow-backend/controllers"
	gpthandler "talentflow-backend/lib/gpt"
	apimodels "talentflow-backend/models/api"
	gptmodels "talentflow-backend/models/api/gpt"
)

type gptApiController struct {
	controllers.BaseAPIController
}

func InitGptApiRouters(app *fiber.App) {
	controller := gptApiController{}
	app.Route("gpt", func(router fiber.Router) {
		router.Post("generate_job_description", controller.generateJobDescription)
		router.Post("chat", controller.chat)
	})
}

// @Summary Generate a job description
// @Tags GPT
// @Description Draft the seven description fields for a job posting; degrades to a sentinel text when the AI service is unavailable
// @Param	body	body	gptmodels.GenJobDescRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=gptmodels.GenJobDescResponse}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/gpt/generate_job_description [post]
func (c *gptApiController) generateJobDescription(ctx *fiber.Ctx) error {
	var payload gptmodels.GenJobDescRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp := gpthandler.Instance.GenerateJobDescription(ctx.UserContext(), payload)
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Ask the assistant
// @Tags GPT
// @Description Chat with the recruitment assistant over the live jobs/applicants snapshot
// @Param	body	body	gptmodels.ChatRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=gptmodels.ChatResponse}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/gpt/chat [post]
func (c *gptApiController) chat(ctx *fiber.Ctx) error {
	var payload gptmodels.ChatRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	reply := gpthandler.Instance.Chat(ctx.UserContext(), payload.Message)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(gptmodels.ChatResponse{Reply: reply}))
}
