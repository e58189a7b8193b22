package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"talentflow-backend/models"
	analyticsapimodels "talentflow-backend/models/api/analytics"
	entitymodels "talentflow-backend/models/entity"
)

func applicantOn(date time.Time, source models.ApplicantSource) entitymodels.Applicant {
	return entitymodels.Applicant{Source: source, ApplicationDate: date}
}

func TestTrend(t *testing.T) {
	now := time.Date(2025, 11, 5, 12, 0, 0, 0, time.UTC)

	t.Run(`empty filtered set yields an empty series`, func(t *testing.T) {
		series := Trend(nil, analyticsapimodels.SourceFilterAll, analyticsapimodels.TrendWindow7, analyticsapimodels.TrendUnitDaily, now)
		require.Empty(t, series)

		applicants := []entitymodels.Applicant{
			applicantOn(now.AddDate(0, 0, -1), models.SourceWebsite),
		}
		series = Trend(applicants, string(models.SourceReferral), analyticsapimodels.TrendWindow7, analyticsapimodels.TrendUnitDaily, now)
		require.Empty(t, series)
	})

	t.Run(`daily series is contiguous and zero filled`, func(t *testing.T) {
		// applications on day 1 and day 3 of a 3-day window
		applicants := []entitymodels.Applicant{
			applicantOn(time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC), models.SourceWebsite),
			applicantOn(time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC), models.SourceWebsite),
		}
		series := Trend(applicants, analyticsapimodels.SourceFilterAll, analyticsapimodels.TrendWindow7, analyticsapimodels.TrendUnitDaily, now)
		require.Len(t, series, 7)
		require.Equal(t, "2025-10-30", series[0].Date)
		require.Equal(t, "2025-11-05", series[6].Date)
		require.Equal(t, 1, series[4].Count)
		require.Equal(t, 0, series[5].Count)
		require.Equal(t, 1, series[6].Count)

		// consecutive keys differ by exactly one calendar day
		prev, err := time.Parse("2006-01-02", series[0].Date)
		require.NoError(t, err)
		for _, point := range series[1:] {
			cur, err := time.Parse("2006-01-02", point.Date)
			require.NoError(t, err)
			require.Equal(t, prev.AddDate(0, 0, 1), cur)
			prev = cur
		}
	})

	t.Run(`window larger than the data span keeps leading empty days`, func(t *testing.T) {
		applicants := []entitymodels.Applicant{
			applicantOn(now, models.SourceWebsite),
		}
		series := Trend(applicants, analyticsapimodels.SourceFilterAll, analyticsapimodels.TrendWindow30, analyticsapimodels.TrendUnitDaily, now)
		require.Len(t, series, 30)
		require.Equal(t, 1, series[29].Count)
		for _, point := range series[:29] {
			require.Equal(t, 0, point.Count)
		}
	})

	t.Run(`end date extends to a future application`, func(t *testing.T) {
		applicants := []entitymodels.Applicant{
			applicantOn(now.AddDate(0, 0, 2), models.SourceWebsite),
		}
		series := Trend(applicants, analyticsapimodels.SourceFilterAll, analyticsapimodels.TrendWindow7, analyticsapimodels.TrendUnitDaily, now)
		require.Len(t, series, 7)
		require.Equal(t, "2025-11-07", series[6].Date)
		require.Equal(t, 1, series[6].Count)
	})

	t.Run(`unbounded window starts at the earliest application`, func(t *testing.T) {
		applicants := []entitymodels.Applicant{
			applicantOn(time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC), models.SourceWebsite),
			applicantOn(time.Date(2025, 11, 4, 8, 0, 0, 0, time.UTC), models.SourceLinkedIn),
		}
		series := Trend(applicants, analyticsapimodels.SourceFilterAll, analyticsapimodels.TrendWindowAll, analyticsapimodels.TrendUnitDaily, now)
		require.Len(t, series, 5)
		require.Equal(t, "2025-11-01", series[0].Date)
		require.Equal(t, "2025-11-05", series[4].Date)
	})

	t.Run(`source filter narrows both the counts and the span`, func(t *testing.T) {
		applicants := []entitymodels.Applicant{
			applicantOn(time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC), models.SourceWebsite),
			applicantOn(time.Date(2025, 11, 4, 8, 0, 0, 0, time.UTC), models.SourceLinkedIn),
		}
		series := Trend(applicants, string(models.SourceLinkedIn), analyticsapimodels.TrendWindowAll, analyticsapimodels.TrendUnitDaily, now)
		require.Len(t, series, 2)
		require.Equal(t, "2025-11-04", series[0].Date)
		require.Equal(t, 1, series[0].Count)
	})

	t.Run(`monthly buckets cross the year boundary without gaps`, func(t *testing.T) {
		applicants := []entitymodels.Applicant{
			applicantOn(time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC), models.SourceWebsite),
			applicantOn(time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC), models.SourceWebsite),
		}
		at := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
		series := Trend(applicants, analyticsapimodels.SourceFilterAll, analyticsapimodels.TrendWindowAll, analyticsapimodels.TrendUnitMonthly, at)
		require.Equal(t, []string{"2024-12", "2025-01", "2025-02"}, datesOf(series))
		require.Equal(t, 1, series[0].Count)
		require.Equal(t, 0, series[1].Count)
		require.Equal(t, 1, series[2].Count)
	})

	t.Run(`yearly buckets`, func(t *testing.T) {
		applicants := []entitymodels.Applicant{
			applicantOn(time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC), models.SourceWebsite),
			applicantOn(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), models.SourceWebsite),
		}
		series := Trend(applicants, analyticsapimodels.SourceFilterAll, analyticsapimodels.TrendWindowAll, analyticsapimodels.TrendUnitYearly, now)
		require.Equal(t, []string{"2023", "2024", "2025"}, datesOf(series))
		require.Equal(t, 0, series[1].Count)
	})

	t.Run(`daily mode spans the leap day`, func(t *testing.T) {
		applicants := []entitymodels.Applicant{
			applicantOn(time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC), models.SourceWebsite),
			applicantOn(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), models.SourceWebsite),
		}
		at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		series := Trend(applicants, analyticsapimodels.SourceFilterAll, analyticsapimodels.TrendWindowAll, analyticsapimodels.TrendUnitDaily, at)
		require.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"}, datesOf(series))
		require.Equal(t, 0, series[1].Count)
	})

	t.Run(`all applications on a single date`, func(t *testing.T) {
		day := time.Date(2025, 11, 5, 10, 0, 0, 0, time.UTC)
		applicants := []entitymodels.Applicant{
			applicantOn(day, models.SourceWebsite),
			applicantOn(day.Add(2*time.Hour), models.SourceReferral),
		}
		series := Trend(applicants, analyticsapimodels.SourceFilterAll, analyticsapimodels.TrendWindowAll, analyticsapimodels.TrendUnitDaily, now)
		require.Len(t, series, 1)
		require.Equal(t, 2, series[0].Count)
	})
}

func datesOf(series []analyticsapimodels.TrendPointView) []string {
	dates := make([]string, 0, len(series))
	for _, point := range series {
		dates = append(dates, point.Date)
	}
	return dates
}
