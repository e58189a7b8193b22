package analytics

import (
	"time"

	analyticsapimodels "talentflow-backend/models/api/analytics"
	entitymodels "talentflow-backend/models/entity"
)

// Trend buckets application dates into a contiguous, zero-filled series.
// The series ends on the later of now and the latest application (seed data
// may be dated in the future), and starts either a fixed window back or at
// the earliest application for the unbounded window. All dates are UTC.
func Trend(applicants []entitymodels.Applicant, source string, window analyticsapimodels.TrendWindow, unit analyticsapimodels.TrendUnit, now time.Time) []analyticsapimodels.TrendPointView {
	filtered := make([]entitymodels.Applicant, 0, len(applicants))
	for _, applicant := range applicants {
		if source != analyticsapimodels.SourceFilterAll && string(applicant.Source) != source {
			continue
		}
		filtered = append(filtered, applicant)
	}
	if len(filtered) == 0 {
		return []analyticsapimodels.TrendPointView{}
	}

	earliest := filtered[0].ApplicationDate.UTC()
	latest := earliest
	for _, applicant := range filtered[1:] {
		ts := applicant.ApplicationDate.UTC()
		if ts.Before(earliest) {
			earliest = ts
		}
		if ts.After(latest) {
			latest = ts
		}
	}

	end := latest
	if now.UTC().After(end) {
		end = now.UTC()
	}
	end = endOfDay(end)

	var start time.Time
	if days := window.Days(); days > 0 {
		start = startOfDay(end.AddDate(0, 0, -(days - 1)))
	} else {
		start = startOfDay(earliest)
	}

	counts := map[string]int{}
	for _, applicant := range filtered {
		ts := applicant.ApplicationDate.UTC()
		if ts.Before(start) || ts.After(end) {
			continue
		}
		counts[bucketKey(ts, unit)]++
	}

	series := make([]analyticsapimodels.TrendPointView, 0)
	for cur := bucketStart(start, unit); !cur.After(end); cur = nextBucket(cur, unit) {
		key := bucketKey(cur, unit)
		series = append(series, analyticsapimodels.TrendPointView{Date: key, Count: counts[key]})
	}
	return series
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, time.UTC)
}

func bucketStart(t time.Time, unit analyticsapimodels.TrendUnit) time.Time {
	t = t.UTC()
	switch unit {
	case analyticsapimodels.TrendUnitMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case analyticsapimodels.TrendUnitYearly:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return startOfDay(t)
}

func nextBucket(t time.Time, unit analyticsapimodels.TrendUnit) time.Time {
	switch unit {
	case analyticsapimodels.TrendUnitMonthly:
		return t.AddDate(0, 1, 0)
	case analyticsapimodels.TrendUnitYearly:
		return t.AddDate(1, 0, 0)
	}
	return t.AddDate(0, 0, 1)
}

func bucketKey(t time.Time, unit analyticsapimodels.TrendUnit) string {
	switch unit {
	case analyticsapimodels.TrendUnitMonthly:
		return t.Format("2006-01")
	case analyticsapimodels.TrendUnitYearly:
		return t.Format("2006")
	}
	return t.Format("2006-01-02")
}
