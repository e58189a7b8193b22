package applicantapimodels

import (
	"time"

	"github.com/pkg/errors"
	"talentflow-backend/models"
	entitymodels "talentflow-backend/models/entity"
)

// UnknownJobTitle is shown when an applicant references a missing job.
const UnknownJobTitle = "unknown"

type ApplicantCreateRequest struct {
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	ResumeURL string                 `json:"resume_url"`
	JobID     string                 `json:"job_id"`
	Source    models.ApplicantSource `json:"source"`
}

func (r ApplicantCreateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("applicant name is required")
	}
	if r.Email == "" {
		return errors.New("applicant email is required")
	}
	if r.JobID == "" {
		return errors.New("job id is required")
	}
	if !r.Source.IsValid() {
		return errors.New("unknown applicant source")
	}
	return nil
}

type StageChangeRequest struct {
	Stage models.RecruitmentStage `json:"stage"`
}

func (r StageChangeRequest) Validate() error {
	if !r.Stage.IsValid() {
		return errors.New("unknown recruitment stage")
	}
	return nil
}

type FeedbackRequest struct {
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

func (r FeedbackRequest) Validate() error {
	if r.Author == "" {
		return errors.New("feedback author is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

type InterviewRequest struct {
	Time           time.Time `json:"time"`
	InterviewerIDs []string  `json:"interviewer_ids"`
}

func (r InterviewRequest) Validate() error {
	if r.Time.IsZero() {
		return errors.New("interview time is required")
	}
	if len(r.InterviewerIDs) == 0 {
		return errors.New("at least one interviewer is required")
	}
	return nil
}

type ApplicantFilter struct {
	JobID string `json:"job_id"`
}

type FeedbackView struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type InterviewerView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ApplicantView struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	ResumeURL       string            `json:"resume_url"`
	JobID           string            `json:"job_id"`
	JobTitle        string            `json:"job_title"`
	Stage           string            `json:"stage"`
	StageLabel      string            `json:"stage_label"`
	Source          string            `json:"source"`
	SourceLabel     string            `json:"source_label"`
	ApplicationDate time.Time         `json:"application_date"`
	Feedback        []FeedbackView    `json:"feedback"`
	InterviewTime   *time.Time        `json:"interview_time,omitempty"`
	Interviewers    []InterviewerView `json:"interviewers,omitempty"`
}

func ApplicantConvert(rec entitymodels.Applicant, jobTitle string) ApplicantView {
	if jobTitle == "" {
		jobTitle = UnknownJobTitle
	}
	feedback := make([]FeedbackView, 0, len(rec.Feedback))
	for _, fb := range rec.Feedback {
		feedback = append(feedback, FeedbackView{
			ID:      fb.ID,
			Author:  fb.Author,
			Comment: fb.Comment,
			Rating:  fb.Rating,
		})
	}
	var interviewers []InterviewerView
	for _, ir := range rec.Interviewers {
		interviewers = append(interviewers, InterviewerView{ID: ir.ID, Name: ir.Name})
	}
	return ApplicantView{
		ID:              rec.ID,
		Name:            rec.Name,
		Email:           rec.Email,
		Phone:           rec.Phone,
		ResumeURL:       rec.ResumeURL,
		JobID:           rec.JobID,
		JobTitle:        jobTitle,
		Stage:           string(rec.Stage),
		StageLabel:      rec.Stage.Label(),
		Source:          string(rec.Source),
		SourceLabel:     rec.Source.Label(),
		ApplicationDate: rec.ApplicationDate,
		Feedback:        feedback,
		InterviewTime:   rec.InterviewTime,
		Interviewers:    interviewers,
	}
}
