package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"talentflow-backend/controllers"
	"talentflow-backend/lib/applicant"
	pdfexport "talentflow-backend/lib/export/pdf"
	xlsexport "talentflow-backend/lib/export/xls"
	filestorage "talentflow-backend/lib/file-storage"
	apimodels "talentflow-backend/models/api"
	applicantapimodels "talentflow-backend/models/api/applicant"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app *fiber.App) {
	controller := applicantApiController{}
	app.Route("applicant", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get("export", controller.exportXls)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("change_stage", controller.changeStage)
			idRouter.Post("feedback", controller.addFeedback)
			idRouter.Put("interview", controller.scheduleInterview)
			idRouter.Post("upload-resume", controller.uploadResume)
			idRouter.Get("resume", controller.getResume)
			idRouter.Get("profile-pdf", controller.profilePdf)
		})
	})
}

// @Summary List applicants
// @Tags Applicant
// @Description List applicants, optionally filtered by job
// @Param	body	body	applicantapimodels.ApplicantFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/applicant/list [post]
func (c *applicantApiController) list(ctx *fiber.Ctx) error {
	var filter applicantapimodels.ApplicantFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list := applicant.Instance.List(filter)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list))))
}

// @Summary Get an applicant
// @Tags Applicant
// @Description Get an applicant by id
// @Param   id	path	string	true	"applicant id"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/applicant/{id} [get]
func (c *applicantApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := applicant.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Submit an application
// @Tags Applicant
// @Description Register a new applicant, entering the pipeline at the first stage
// @Param	body	body	applicantapimodels.ApplicantCreateRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/applicant [post]
func (c *applicantApiController) create(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplicantCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := applicant.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Change applicant stage
// @Tags Applicant
// @Description Move an applicant to another recruitment stage
// @Param   id	path	string	true	"applicant id"
// @Param	body	body	applicantapimodels.StageChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/applicant/{id}/change_stage [put]
func (c *applicantApiController) changeStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.StageChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := applicant.Instance.ChangeStage(id, payload.Stage)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Add feedback
// @Tags Applicant
// @Description Append an interview feedback entry to an applicant
// @Param   id	path	string	true	"applicant id"
// @Param	body	body	applicantapimodels.FeedbackRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/applicant/{id}/feedback [post]
func (c *applicantApiController) addFeedback(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.FeedbackRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := applicant.Instance.AddFeedback(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Schedule an interview
// @Tags Applicant
// @Description Set interview time and interviewers for an applicant, both at once
// @Param   id	path	string	true	"applicant id"
// @Param	body	body	applicantapimodels.InterviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/applicant/{id}/interview [put]
func (c *applicantApiController) scheduleInterview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.InterviewRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := applicant.Instance.ScheduleInterview(id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Export applicants to xlsx
// @Tags Applicant
// @Description Download the applicant list as an xlsx file
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/export [get]
func (c *applicantApiController) exportXls(ctx *fiber.Ctx) error {
	list := applicant.Instance.List(applicantapimodels.ApplicantFilter{})
	buf, err := xlsexport.Instance.ExportApplicantList(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="applicants.xlsx"`)
	return ctx.Status(fiber.StatusOK).SendStream(buf)
}

// @Summary Upload a resume
// @Tags Applicant
// @Description Upload the applicant resume file
// @Param   id		path		string	true	"applicant id"
// @Param   resume	formData	file	true	"file to upload"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/upload-resume [post]
func (c *applicantApiController) uploadResume(ctx *fiber.Ctx) error {
	applicantID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open the resume file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read the resume file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = filestorage.Instance.UploadResume(ctx.UserContext(), applicantID, fileBody, file.Filename)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download a resume
// @Tags Applicant
// @Description Download the applicant resume file
// @Param   id	path	string	true	"applicant id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @router /api/v1/applicant/{id}/resume [get]
func (c *applicantApiController) getResume(ctx *fiber.Ctx) error {
	applicantID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, err := filestorage.Instance.GetResume(ctx.UserContext(), applicantID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Applicant profile as pdf
// @Tags Applicant
// @Description Download the applicant summary with feedback as a pdf
// @Param   id	path	string	true	"applicant id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @router /api/v1/applicant/{id}/profile-pdf [get]
func (c *applicantApiController) profilePdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := applicant.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	body, err := pdfexport.GenerateApplicantProfile(rec)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="profile.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}
