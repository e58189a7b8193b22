package jobapimodels

import (
	"time"

	"github.com/pkg/errors"
	"talentflow-backend/models"
	entitymodels "talentflow-backend/models/entity"
)

type JobCreateRequest struct {
	Title               string `json:"title"`
	Department          string `json:"department"`
	Description         string `json:"description"`
	Requirements        string `json:"requirements"`
	Benefits            string `json:"benefits"`
	NiceToHave          string `json:"nice_to_have"`
	TeamIntro           string `json:"team_intro"`
	TechStack           string `json:"tech_stack"`
	GrowthOpportunities string `json:"growth_opportunities"`
}

func (r JobCreateRequest) Validate() error {
	if r.Title == "" {
		return errors.New("job title is required")
	}
	if r.Department == "" {
		return errors.New("job department is required")
	}
	return nil
}

type JobStatusRequest struct {
	Status models.JobStatus `json:"status"`
}

func (r JobStatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.New("unknown job status")
	}
	return nil
}

type JobView struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Department          string    `json:"department"`
	Description         string    `json:"description"`
	Requirements        string    `json:"requirements"`
	Benefits            string    `json:"benefits"`
	NiceToHave          string    `json:"nice_to_have,omitempty"`
	TeamIntro           string    `json:"team_intro,omitempty"`
	TechStack           string    `json:"tech_stack,omitempty"`
	GrowthOpportunities string    `json:"growth_opportunities,omitempty"`
	Status              string    `json:"status"`
	StatusLabel         string    `json:"status_label"`
	Views               int       `json:"views"`
	ApplicantCount      int       `json:"applicant_count"`
	CreatedAt           time.Time `json:"created_at"`
}

func JobConvert(rec entitymodels.Job, applicantCount int) JobView {
	return JobView{
		ID:                  rec.ID,
		Title:               rec.Title,
		Department:          rec.Department,
		Description:         rec.Description,
		Requirements:        rec.Requirements,
		Benefits:            rec.Benefits,
		NiceToHave:          rec.NiceToHave,
		TeamIntro:           rec.TeamIntro,
		TechStack:           rec.TechStack,
		GrowthOpportunities: rec.GrowthOpportunities,
		Status:              string(rec.Status),
		StatusLabel:         rec.Status.Label(),
		Views:               rec.Views,
		ApplicantCount:      applicantCount,
		CreatedAt:           rec.CreatedAt,
	}
}
