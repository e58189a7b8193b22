package entitymodels

import (
	"talentflow-backend/models"
	"time"
)

type Applicant struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	ResumeURL       string
	ResumeObjectKey string // key in the file storage, empty if no resume uploaded
	JobID           string
	Stage           models.RecruitmentStage
	Source          models.ApplicantSource
	ApplicationDate time.Time
	Feedback        []Feedback // insertion order is display order
	InterviewTime   *time.Time
	Interviewers    []Interviewer
	HiredAt         *time.Time // set on transition into the hired stage
}

// Feedback is immutable once created and owned by its applicant.
type Feedback struct {
	ID      string
	Author  string
	Comment string
	Rating  int // 1-5
}

// Interviewer is static reference data.
type Interviewer struct {
	ID   string
	Name string
}
