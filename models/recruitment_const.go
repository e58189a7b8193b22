package models

import "github.com/pkg/errors"

type RecruitmentStage string

const (
	StageNewApplication RecruitmentStage = "new_application"
	StageScreening      RecruitmentStage = "screening"
	StageInterview      RecruitmentStage = "interview"
	StageOffer          RecruitmentStage = "offer"
	StageHired          RecruitmentStage = "hired"
	StageRejected       RecruitmentStage = "rejected"
)

// FunnelStages is the canonical funnel order, rejected excluded
var FunnelStages = []RecruitmentStage{
	StageNewApplication,
	StageScreening,
	StageInterview,
	StageOffer,
	StageHired,
}

var stageLabels = map[RecruitmentStage]string{
	StageNewApplication: "New Application",
	StageScreening:      "Screening",
	StageInterview:      "Interview",
	StageOffer:          "Offer",
	StageHired:          "Hired",
	StageRejected:       "Rejected",
}

func (s RecruitmentStage) IsValid() bool {
	_, ok := stageLabels[s]
	return ok
}

func (s RecruitmentStage) Label() string {
	return stageLabels[s]
}

type ApplicantSource string

const (
	SourceWebsite  ApplicantSource = "website"
	SourceLinkedIn ApplicantSource = "linkedin"
	SourceReferral ApplicantSource = "referral"
	SourceOther    ApplicantSource = "other"
)

var sourceLabels = map[ApplicantSource]string{
	SourceWebsite:  "Website",
	SourceLinkedIn: "LinkedIn",
	SourceReferral: "Referral",
	SourceOther:    "Other",
}

func (s ApplicantSource) IsValid() bool {
	_, ok := sourceLabels[s]
	return ok
}

func (s ApplicantSource) Label() string {
	return sourceLabels[s]
}

type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
)

var jobStatusLabels = map[JobStatus]string{
	JobStatusDraft:     "Draft",
	JobStatusPublished: "Published",
	JobStatusClosed:    "Closed",
}

func (s JobStatus) IsValid() bool {
	_, ok := jobStatusLabels[s]
	return ok
}

func (s JobStatus) Label() string {
	return jobStatusLabels[s]
}

// IsAllowStatusChange checks the legal lifecycle edges:
// draft -> published, published -> closed, closed -> published
func (s JobStatus) IsAllowStatusChange(newStatus JobStatus) (bool, error) {
	if !newStatus.IsValid() {
		return false, errors.New("unknown job status")
	}
	if s == newStatus {
		return false, nil
	}
	switch s {
	case JobStatusDraft:
		if newStatus == JobStatusPublished {
			return true, nil
		}
	case JobStatusPublished:
		if newStatus == JobStatusClosed {
			return true, nil
		}
	case JobStatusClosed:
		if newStatus == JobStatusPublished {
			return true, nil
		}
	}
	return false, errors.Errorf("status change %s -> %s is not allowed", s, newStatus)
}
