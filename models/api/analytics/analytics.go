package analyticsapimodels

import (
	"github.com/pkg/errors"
	"talentflow-backend/models"
)

type TrendWindow string

const (
	TrendWindow7   TrendWindow = "7"
	TrendWindow30  TrendWindow = "30"
	TrendWindow90  TrendWindow = "90"
	TrendWindowAll TrendWindow = "all"
)

// Days returns the fixed day count of the window, 0 for the unbounded window.
func (w TrendWindow) Days() int {
	switch w {
	case TrendWindow7:
		return 7
	case TrendWindow30:
		return 30
	case TrendWindow90:
		return 90
	}
	return 0
}

type TrendUnit string

const (
	TrendUnitDaily   TrendUnit = "daily"
	TrendUnitMonthly TrendUnit = "monthly"
	TrendUnitYearly  TrendUnit = "yearly"
)

// SourceFilterAll disables source filtering.
const SourceFilterAll = "all"

type TrendFilter struct {
	Source string      `json:"source"`
	Window TrendWindow `json:"window"`
	Unit   TrendUnit   `json:"unit"`
}

func (f *TrendFilter) Validate() error {
	if f.Source == "" {
		f.Source = SourceFilterAll
	}
	if f.Source != SourceFilterAll && !models.ApplicantSource(f.Source).IsValid() {
		return errors.New("unknown applicant source")
	}
	if f.Window == "" {
		f.Window = TrendWindow30
	}
	switch f.Window {
	case TrendWindow7, TrendWindow30, TrendWindow90, TrendWindowAll:
	default:
		return errors.New("unknown trend window")
	}
	if f.Unit == "" {
		f.Unit = TrendUnitDaily
	}
	switch f.Unit {
	case TrendUnitDaily, TrendUnitMonthly, TrendUnitYearly:
	default:
		return errors.New("unknown trend unit")
	}
	return nil
}

type KpiView struct {
	ActiveJobs          int     `json:"active_jobs"`
	TotalApplicants     int     `json:"total_applicants"`
	AvgHiringCycleDays  float64 `json:"avg_hiring_cycle_days"`
	OfferAcceptanceRate string  `json:"offer_acceptance_rate"`
}

type FunnelStageView struct {
	Stage      string  `json:"stage"`
	StageLabel string  `json:"stage_label"`
	Count      int     `json:"count"`
	Conversion float64 `json:"conversion"`
}

type TrendPointView struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type SourceCountView struct {
	Source      string `json:"source"`
	SourceLabel string `json:"source_label"`
	Count       int    `json:"count"`
}

type DashboardView struct {
	Kpi     KpiView           `json:"kpi"`
	Funnel  []FunnelStageView `json:"funnel"`
	Sources []SourceCountView `json:"sources"`
	Trend   []TrendPointView  `json:"trend"`
}
