package initializers

import (
	"context"

	"talentflow-backend/config"
	"talentflow-backend/fiberlog"
	"talentflow-backend/lib/analytics"
	"talentflow-backend/lib/applicant"
	"talentflow-backend/lib/calendar"
	interviewerprovider "talentflow-backend/lib/dicts/interviewer"
	xlsexport "talentflow-backend/lib/export/xls"
	filestorage "talentflow-backend/lib/file-storage"
	gpthandler "talentflow-backend/lib/gpt"
	"talentflow-backend/lib/job"
	entitystore "talentflow-backend/lib/store"
)

var LoggerConfig *fiberlog.Config

// Store is the single entity store shared by every handler.
var Store entitystore.Provider

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitS3(ctx)

	Store = entitystore.NewInstance()
	interviewerprovider.NewHandler(Store)
	job.NewHandler(Store)
	applicant.NewHandler(Store)
	xlsexport.NewHandler()
	analytics.NewHandler(Store)
	gpthandler.NewHandler(Store)
	calendar.NewHandler()
	filestorage.NewHandler(Store)

	if config.Conf.App.SeedDemo != nil && *config.Conf.App.SeedDemo {
		SeedDemoData(Store)
	}
}
