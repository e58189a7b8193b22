package job

import (
	"github.com/pkg/errors"
	entitystore "talentflow-backend/lib/store"
	initchecker "talentflow-backend/lib/utils/init-checker"
	"talentflow-backend/models"
	jobapimodels "talentflow-backend/models/api/job"
	entitymodels "talentflow-backend/models/entity"
)

type Provider interface {
	List() []jobapimodels.JobView
	GetByID(id string) (jobapimodels.JobView, error)
	Create(payload jobapimodels.JobCreateRequest) (jobapimodels.JobView, error)
	StatusChange(id string, status models.JobStatus) (jobapimodels.JobView, error)
	TrackView(id string) error
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

func (i impl) List() []jobapimodels.JobView {
	jobs, applicants := i.store.Snapshot()
	counts := map[string]int{}
	for _, a := range applicants {
		counts[a.JobID]++
	}
	result := make([]jobapimodels.JobView, 0, len(jobs))
	for _, rec := range jobs {
		result = append(result, jobapimodels.JobConvert(rec, counts[rec.ID]))
	}
	return result
}

func (i impl) GetByID(id string) (jobapimodels.JobView, error) {
	rec := i.store.GetJob(id)
	if rec == nil {
		return jobapimodels.JobView{}, errors.New("job not found")
	}
	count := 0
	for _, a := range i.store.ListApplicants() {
		if a.JobID == id {
			count++
		}
	}
	return jobapimodels.JobConvert(*rec, count), nil
}

func (i impl) Create(payload jobapimodels.JobCreateRequest) (jobapimodels.JobView, error) {
	rec, err := i.store.AddJob(entitymodels.Job{
		Title:               payload.Title,
		Department:          payload.Department,
		Description:         payload.Description,
		Requirements:        payload.Requirements,
		Benefits:            payload.Benefits,
		NiceToHave:          payload.NiceToHave,
		TeamIntro:           payload.TeamIntro,
		TechStack:           payload.TechStack,
		GrowthOpportunities: payload.GrowthOpportunities,
	})
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	return jobapimodels.JobConvert(rec, 0), nil
}

func (i impl) StatusChange(id string, status models.JobStatus) (jobapimodels.JobView, error) {
	rec, err := i.store.SetJobStatus(id, status)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	count := 0
	for _, a := range i.store.ListApplicants() {
		if a.JobID == id {
			count++
		}
	}
	return jobapimodels.JobConvert(rec, count), nil
}

func (i impl) TrackView(id string) error {
	return i.store.AddJobView(id)
}
