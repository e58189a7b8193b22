package gptmodels

import "github.com/pkg/errors"

type GenJobDescRequest struct {
	JobTitle   string `json:"job_title"`
	Department string `json:"department"`
}

func (r GenJobDescRequest) Validate() error {
	if r.JobTitle == "" {
		return errors.New("job title is required")
	}
	if r.Department == "" {
		return errors.New("department is required")
	}
	return nil
}

type GenJobDescResponse struct {
	Description         string `json:"description"`
	Requirements        string `json:"requirements"`
	Benefits            string `json:"benefits"`
	NiceToHave          string `json:"niceToHave"`
	TeamIntro           string `json:"teamIntro"`
	TechStack           string `json:"techStack"`
	GrowthOpportunities string `json:"growthOpportunities"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

func (r ChatRequest) Validate() error {
	if r.Message == "" {
		return errors.New("message is required")
	}
	return nil
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
