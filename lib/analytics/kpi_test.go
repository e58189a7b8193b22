package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"talentflow-backend/models"
	entitymodels "talentflow-backend/models/entity"
)

func TestSummary(t *testing.T) {
	t.Run(`empty snapshot yields zero values, not NaN`, func(t *testing.T) {
		kpi := Summary(nil, nil)
		require.Equal(t, 0, kpi.ActiveJobs)
		require.Equal(t, 0, kpi.TotalApplicants)
		require.Equal(t, 0.0, kpi.AvgHiringCycleDays)
		require.Equal(t, OfferAcceptanceRateNA, kpi.OfferAcceptanceRate)
	})

	t.Run(`active jobs counts only the published ones`, func(t *testing.T) {
		jobs := []entitymodels.Job{
			{ID: "j1", Title: "a", Status: models.JobStatusPublished},
			{ID: "j2", Title: "b", Status: models.JobStatusDraft},
			{ID: "j3", Title: "c", Status: models.JobStatusClosed},
			{ID: "j4", Title: "d", Status: models.JobStatusPublished},
		}
		kpi := Summary(jobs, nil)
		require.Equal(t, 2, kpi.ActiveJobs)
	})

	t.Run(`offer acceptance rate is N/A only when hired and offer are both zero`, func(t *testing.T) {
		applicants := []entitymodels.Applicant{
			{ID: "a1", Stage: models.StageScreening},
			{ID: "a2", Stage: models.StageInterview},
		}
		kpi := Summary(nil, applicants)
		require.Equal(t, OfferAcceptanceRateNA, kpi.OfferAcceptanceRate)

		applicants = append(applicants,
			entitymodels.Applicant{ID: "a3", Stage: models.StageHired},
			entitymodels.Applicant{ID: "a4", Stage: models.StageOffer},
			entitymodels.Applicant{ID: "a5", Stage: models.StageOffer},
		)
		kpi = Summary(nil, applicants)
		require.Equal(t, "33.3%", kpi.OfferAcceptanceRate)
	})

	t.Run(`all offers accepted`, func(t *testing.T) {
		applicants := []entitymodels.Applicant{
			{ID: "a1", Stage: models.StageHired},
			{ID: "a2", Stage: models.StageHired},
		}
		kpi := Summary(nil, applicants)
		require.Equal(t, "100.0%", kpi.OfferAcceptanceRate)
	})

	t.Run(`hiring cycle uses real hire dates when present`, func(t *testing.T) {
		created := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
		hired := created.AddDate(0, 0, 20)
		jobs := []entitymodels.Job{{ID: "j1", Title: "Engineer", CreatedAt: created}}
		applicants := []entitymodels.Applicant{
			{ID: "a1", JobID: "j1", Stage: models.StageHired, HiredAt: &hired},
		}
		kpi := Summary(jobs, applicants)
		require.Equal(t, 20.0, kpi.AvgHiringCycleDays)
	})

	t.Run(`jobs without hires fall back to the placeholder formula`, func(t *testing.T) {
		jobs := []entitymodels.Job{{ID: "j1", Title: "Engineer"}} // 8 runes
		kpi := Summary(jobs, nil)
		require.Equal(t, float64((8*3)%25+10), kpi.AvgHiringCycleDays)
	})

	t.Run(`idempotent over the same snapshot`, func(t *testing.T) {
		jobs := []entitymodels.Job{{ID: "j1", Title: "Engineer", Status: models.JobStatusPublished}}
		applicants := []entitymodels.Applicant{{ID: "a1", Stage: models.StageOffer}}
		first := Summary(jobs, applicants)
		second := Summary(jobs, applicants)
		require.Equal(t, first, second)
	})
}
