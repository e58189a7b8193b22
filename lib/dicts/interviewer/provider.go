package interviewerprovider

import (
	entitystore "talentflow-backend/lib/store"
	initchecker "talentflow-backend/lib/utils/init-checker"
	applicantapimodels "talentflow-backend/models/api/applicant"
	entitymodels "talentflow-backend/models/entity"
)

type Provider interface {
	List() []applicantapimodels.InterviewerView
	GetByIDs(ids []string) []entitymodels.Interviewer
}

var Instance Provider

func NewHandler(store entitystore.Provider) {
	instance := impl{
		store: store,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store entitystore.Provider
}

func (i impl) List() []applicantapimodels.InterviewerView {
	list := i.store.ListInterviewers()
	views := make([]applicantapimodels.InterviewerView, 0, len(list))
	for _, ir := range list {
		views = append(views, applicantapimodels.InterviewerView{ID: ir.ID, Name: ir.Name})
	}
	return views
}

func (i impl) GetByIDs(ids []string) []entitymodels.Interviewer {
	return i.store.GetInterviewers(ids)
}
