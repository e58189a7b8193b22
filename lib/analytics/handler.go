package analytics

import (
	"bytes"
	"time"

	xlsexport "talentflow-backend/lib/export/xls"
	entitystore "talentflow-backend/lib/store"
	initchecker "talentflow-backend/lib/utils/init-checker"
	analyticsapimodels "talentflow-backend/models/api/analytics"
)

type Provider interface {
	Dashboard(filter analyticsapimodels.TrendFilter) analyticsapimodels.DashboardView
	Trend(filter analyticsapimodels.TrendFilter) []analyticsapimodels.TrendPointView
	DashboardExportToXls(filter analyticsapimodels.TrendFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler(store entitystore.Provider) {
	instance := impl{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store entitystore.Provider
	now   func() time.Time
}

func (i impl) Dashboard(filter analyticsapimodels.TrendFilter) analyticsapimodels.DashboardView {
	jobs, applicants := i.store.Snapshot()
	return analyticsapimodels.DashboardView{
		Kpi:     Summary(jobs, applicants),
		Funnel:  Funnel(applicants),
		Sources: SourceDistribution(applicants),
		Trend:   Trend(applicants, filter.Source, filter.Window, filter.Unit, i.now()),
	}
}

func (i impl) Trend(filter analyticsapimodels.TrendFilter) []analyticsapimodels.TrendPointView {
	_, applicants := i.store.Snapshot()
	return Trend(applicants, filter.Source, filter.Window, filter.Unit, i.now())
}

func (i impl) DashboardExportToXls(filter analyticsapimodels.TrendFilter) (*bytes.Buffer, error) {
	return xlsexport.Instance.ExportDashboard(i.Dashboard(filter))
}
