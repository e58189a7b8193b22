package applicant

import (
	"github.com/pkg/errors"
	entitystore "talentflow-backend/lib/store"
	initchecker "talentflow-backend/lib/utils/init-checker"
	"talentflow-backend/models"
	applicantapimodels "talentflow-backend/models/api/applicant"
	entitymodels "talentflow-backend/models/entity"
)

type Provider interface {
	List(filter applicantapimodels.ApplicantFilter) []applicantapimodels.ApplicantView
	GetByID(id string) (applicantapimodels.ApplicantView, error)
	Create(payload applicantapimodels.ApplicantCreateRequest) (applicantapimodels.ApplicantView, error)
	ChangeStage(id string, stage models.RecruitmentStage) (applicantapimodels.ApplicantView, error)
	AddFeedback(id string, payload applicantapimodels.FeedbackRequest) (applicantapimodels.ApplicantView, error)
	ScheduleInterview(id string, payload applicantapimodels.InterviewRequest) (applicantapimodels.ApplicantView, error)
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

func (i impl) List(filter applicantapimodels.ApplicantFilter) []applicantapimodels.ApplicantView {
	jobs, applicants := i.store.Snapshot()
	titles := map[string]string{}
	for _, j := range jobs {
		titles[j.ID] = j.Title
	}
	result := make([]applicantapimodels.ApplicantView, 0, len(applicants))
	for _, rec := range applicants {
		if filter.JobID != "" && rec.JobID != filter.JobID {
			continue
		}
		result = append(result, applicantapimodels.ApplicantConvert(rec, titles[rec.JobID]))
	}
	return result
}

func (i impl) GetByID(id string) (applicantapimodels.ApplicantView, error) {
	rec := i.store.GetApplicant(id)
	if rec == nil {
		return applicantapimodels.ApplicantView{}, errors.New("applicant not found")
	}
	return i.convert(*rec), nil
}

func (i impl) Create(payload applicantapimodels.ApplicantCreateRequest) (applicantapimodels.ApplicantView, error) {
	// submissions always enter the pipeline at the first stage;
	// a dangling job reference is accepted on purpose
	rec, err := i.store.AddApplicant(entitymodels.Applicant{
		Name:      payload.Name,
		Email:     payload.Email,
		Phone:     payload.Phone,
		ResumeURL: payload.ResumeURL,
		JobID:     payload.JobID,
		Stage:     models.StageNewApplication,
		Source:    payload.Source,
	})
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	return i.convert(rec), nil
}

func (i impl) ChangeStage(id string, stage models.RecruitmentStage) (applicantapimodels.ApplicantView, error) {
	rec, err := i.store.UpdateApplicantStage(id, stage)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	return i.convert(rec), nil
}

func (i impl) AddFeedback(id string, payload applicantapimodels.FeedbackRequest) (applicantapimodels.ApplicantView, error) {
	rec, err := i.store.AddFeedback(id, entitymodels.Feedback{
		Author:  payload.Author,
		Comment: payload.Comment,
		Rating:  payload.Rating,
	})
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	return i.convert(rec), nil
}

func (i impl) ScheduleInterview(id string, payload applicantapimodels.InterviewRequest) (applicantapimodels.ApplicantView, error) {
	interviewers := i.store.GetInterviewers(payload.InterviewerIDs)
	if len(interviewers) == 0 {
		return applicantapimodels.ApplicantView{}, errors.New("no known interviewers selected")
	}
	rec, err := i.store.SetInterview(id, payload.Time, interviewers)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	return i.convert(rec), nil
}

func (i impl) convert(rec entitymodels.Applicant) applicantapimodels.ApplicantView {
	title := ""
	if job := i.store.GetJob(rec.JobID); job != nil {
		title = job.Title
	}
	return applicantapimodels.ApplicantConvert(rec, title)
}
