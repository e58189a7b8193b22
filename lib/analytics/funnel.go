package analytics

import (
	"talentflow-backend/models"
	analyticsapimodels "talentflow-backend/models/api/analytics"
	entitymodels "talentflow-backend/models/entity"
)

// Funnel builds the stage cross-section: every applicant is counted once,
// in the stage they currently occupy. Rejected applicants are excluded.
// Conversion of a stage is its count relative to the previous stage; when
// the previous stage is empty the conversion is reported as zero.
func Funnel(applicants []entitymodels.Applicant) []analyticsapimodels.FunnelStageView {
	counts := map[models.RecruitmentStage]int{}
	for _, applicant := range applicants {
		if applicant.Stage == models.StageRejected {
			continue
		}
		counts[applicant.Stage]++
	}

	funnel := make([]analyticsapimodels.FunnelStageView, 0, len(models.FunnelStages))
	for idx, stage := range models.FunnelStages {
		conversion := 100.0
		if idx > 0 {
			prior := counts[models.FunnelStages[idx-1]]
			if prior == 0 {
				conversion = 0
			} else {
				conversion = round1(float64(counts[stage]) / float64(prior) * 100)
			}
		}
		funnel = append(funnel, analyticsapimodels.FunnelStageView{
			Stage:      string(stage),
			StageLabel: stage.Label(),
			Count:      counts[stage],
			Conversion: conversion,
		})
	}
	return funnel
}

// SourceDistribution counts applicants per source in canonical order,
// omitting sources nobody came from.
func SourceDistribution(applicants []entitymodels.Applicant) []analyticsapimodels.SourceCountView {
	counts := map[models.ApplicantSource]int{}
	for _, applicant := range applicants {
		counts[applicant.Source]++
	}

	order := []models.ApplicantSource{
		models.SourceWebsite,
		models.SourceLinkedIn,
		models.SourceReferral,
		models.SourceOther,
	}
	dist := make([]analyticsapimodels.SourceCountView, 0, len(order))
	for _, source := range order {
		if counts[source] == 0 {
			continue
		}
		dist = append(dist, analyticsapimodels.SourceCountView{
			Source:      string(source),
			SourceLabel: source.Label(),
			Count:       counts[source],
		})
	}
	return dist
}
