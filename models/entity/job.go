package entitymodels

import (
	"talentflow-backend/models"
	"time"
)

type Job struct {
	ID                  string
	Title               string
	Department          string
	Description         string
	Requirements        string
	Benefits            string
	NiceToHave          string
	TeamIntro           string
	TechStack           string
	GrowthOpportunities string
	Status              models.JobStatus
	Views               int
	CreatedAt           time.Time
}
