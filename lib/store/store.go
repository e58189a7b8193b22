package entitystore

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"talentflow-backend/models"
	entitymodels "talentflow-backend/models/entity"
)

// Provider is the single writer over the jobs/applicants collections.
// Reads return deep copies, so every derived computation works on an
// immutable snapshot.
type Provider interface {
	ListJobs() []entitymodels.Job
	GetJob(id string) *entitymodels.Job
	AddJob(rec entitymodels.Job) (entitymodels.Job, error)
	SetJobStatus(id string, status models.JobStatus) (entitymodels.Job, error)
	AddJobView(id string) error

	ListApplicants() []entitymodels.Applicant
	GetApplicant(id string) *entitymodels.Applicant
	AddApplicant(rec entitymodels.Applicant) (entitymodels.Applicant, error)
	UpdateApplicantStage(id string, stage models.RecruitmentStage) (entitymodels.Applicant, error)
	AddFeedback(applicantID string, fb entitymodels.Feedback) (entitymodels.Applicant, error)
	SetInterview(applicantID string, at time.Time, interviewers []entitymodels.Interviewer) (entitymodels.Applicant, error)
	SetResumeObject(applicantID string, objectKey string) error

	ListInterviewers() []entitymodels.Interviewer
	GetInterviewers(ids []string) []entitymodels.Interviewer
	SetInterviewers(list []entitymodels.Interviewer)

	Snapshot() (jobs []entitymodels.Job, applicants []entitymodels.Applicant)
}

func NewInstance() Provider {
	return &impl{
		jobs:       map[string]*entitymodels.Job{},
		applicants: map[string]*entitymodels.Applicant{},
	}
}

type impl struct {
	mu sync.RWMutex

	jobs     map[string]*entitymodels.Job
	jobOrder []string

	applicants     map[string]*entitymodels.Applicant
	applicantOrder []string

	interviewers []entitymodels.Interviewer
}

func (i *impl) ListJobs() []entitymodels.Job {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.listJobsLocked()
}

func (i *impl) listJobsLocked() []entitymodels.Job {
	list := make([]entitymodels.Job, 0, len(i.jobOrder))
	for _, id := range i.jobOrder {
		list = append(list, *i.jobs[id])
	}
	return list
}

func (i *impl) GetJob(id string) *entitymodels.Job {
	i.mu.RLock()
	defer i.mu.RUnlock()
	rec, ok := i.jobs[id]
	if !ok {
		return nil
	}
	cp := *rec
	return &cp
}

func (i *impl) AddJob(rec entitymodels.Job) (entitymodels.Job, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	rec.ID = uuid.NewString()
	// every job starts its life as a draft
	rec.Status = models.JobStatusDraft
	rec.Views = 0
	rec.CreatedAt = time.Now().UTC()
	i.jobs[rec.ID] = &rec
	i.jobOrder = append(i.jobOrder, rec.ID)
	return rec, nil
}

func (i *impl) SetJobStatus(id string, status models.JobStatus) (entitymodels.Job, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	rec, ok := i.jobs[id]
	if !ok {
		return entitymodels.Job{}, errors.New("job not found")
	}
	allowed, err := rec.Status.IsAllowStatusChange(status)
	if err != nil {
		return entitymodels.Job{}, err
	}
	if allowed {
		rec.Status = status
	}
	return *rec, nil
}

func (i *impl) AddJobView(id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	rec, ok := i.jobs[id]
	if !ok {
		return errors.New("job not found")
	}
	rec.Views++
	return nil
}

func (i *impl) ListApplicants() []entitymodels.Applicant {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.listApplicantsLocked()
}

func (i *impl) listApplicantsLocked() []entitymodels.Applicant {
	list := make([]entitymodels.Applicant, 0, len(i.applicantOrder))
	for _, id := range i.applicantOrder {
		list = append(list, copyApplicant(i.applicants[id]))
	}
	return list
}

func (i *impl) GetApplicant(id string) *entitymodels.Applicant {
	i.mu.RLock()
	defer i.mu.RUnlock()
	rec, ok := i.applicants[id]
	if !ok {
		return nil
	}
	cp := copyApplicant(rec)
	return &cp
}

func (i *impl) AddApplicant(rec entitymodels.Applicant) (entitymodels.Applicant, error) {
	if !rec.Stage.IsValid() {
		return entitymodels.Applicant{}, errors.New("unknown recruitment stage")
	}
	if !rec.Source.IsValid() {
		return entitymodels.Applicant{}, errors.New("unknown applicant source")
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	rec.ID = uuid.NewString()
	rec.Feedback = nil
	if rec.ApplicationDate.IsZero() {
		rec.ApplicationDate = time.Now().UTC()
	}
	i.applicants[rec.ID] = &rec
	i.applicantOrder = append(i.applicantOrder, rec.ID)
	return copyApplicant(&rec), nil
}

func (i *impl) UpdateApplicantStage(id string, stage models.RecruitmentStage) (entitymodels.Applicant, error) {
	if !stage.IsValid() {
		return entitymodels.Applicant{}, errors.New("unknown recruitment stage")
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	rec, ok := i.applicants[id]
	if !ok {
		return entitymodels.Applicant{}, errors.New("applicant not found")
	}
	// the pipeline allows free movement between any two stages;
	// the hire timestamp follows the stage so cycle-time stays recomputable
	if stage == models.StageHired && rec.Stage != models.StageHired {
		now := time.Now().UTC()
		rec.HiredAt = &now
	}
	if stage != models.StageHired {
		rec.HiredAt = nil
	}
	rec.Stage = stage
	return copyApplicant(rec), nil
}

func (i *impl) AddFeedback(applicantID string, fb entitymodels.Feedback) (entitymodels.Applicant, error) {
	if fb.Rating < 1 || fb.Rating > 5 {
		return entitymodels.Applicant{}, errors.New("rating must be between 1 and 5")
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	rec, ok := i.applicants[applicantID]
	if !ok {
		return entitymodels.Applicant{}, errors.New("applicant not found")
	}
	fb.ID = uuid.NewString()
	rec.Feedback = append(rec.Feedback, fb)
	return copyApplicant(rec), nil
}

func (i *impl) SetInterview(applicantID string, at time.Time, interviewers []entitymodels.Interviewer) (entitymodels.Applicant, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	rec, ok := i.applicants[applicantID]
	if !ok {
		return entitymodels.Applicant{}, errors.New("applicant not found")
	}
	t := at
	rec.InterviewTime = &t
	rec.Interviewers = append([]entitymodels.Interviewer(nil), interviewers...)
	return copyApplicant(rec), nil
}

func (i *impl) SetResumeObject(applicantID string, objectKey string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	rec, ok := i.applicants[applicantID]
	if !ok {
		return errors.New("applicant not found")
	}
	rec.ResumeObjectKey = objectKey
	return nil
}

func (i *impl) ListInterviewers() []entitymodels.Interviewer {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return append([]entitymodels.Interviewer(nil), i.interviewers...)
}

func (i *impl) GetInterviewers(ids []string) []entitymodels.Interviewer {
	i.mu.RLock()
	defer i.mu.RUnlock()
	list := make([]entitymodels.Interviewer, 0, len(ids))
	for _, id := range ids {
		for _, ir := range i.interviewers {
			if ir.ID == id {
				list = append(list, ir)
				break
			}
		}
	}
	return list
}

func (i *impl) SetInterviewers(list []entitymodels.Interviewer) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.interviewers = append([]entitymodels.Interviewer(nil), list...)
}

func (i *impl) Snapshot() ([]entitymodels.Job, []entitymodels.Applicant) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.listJobsLocked(), i.listApplicantsLocked()
}

func copyApplicant(rec *entitymodels.Applicant) entitymodels.Applicant {
	cp := *rec
	cp.Feedback = append([]entitymodels.Feedback(nil), rec.Feedback...)
	cp.Interviewers = append([]entitymodels.Interviewer(nil), rec.Interviewers...)
	if rec.InterviewTime != nil {
		t := *rec.InterviewTime
		cp.InterviewTime = &t
	}
	if rec.HiredAt != nil {
		t := *rec.HiredAt
		cp.HiredAt = &t
	}
	return cp
}
