package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	analyticsapimodels "talentflow-backend/models/api/analytics"
	applicantapimodels "talentflow-backend/models/api/applicant"
)

type Provider interface {
	ExportDashboard(data analyticsapimodels.DashboardView) (*bytes.Buffer, error)
	ExportApplicantList(list []applicantapimodels.ApplicantView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var (
	kpiHeaders       = []string{"Metric", "Value"}
	funnelHeaders    = []string{"Stage", "Applicants", "Conversion %"}
	trendHeaders     = []string{"Period", "Submissions"}
	applicantHeaders = []string{"Name", "Contacts", "Job", "Stage", "Source", "Application date", "Interview time"}
)

func (i impl) ExportDashboard(data analyticsapimodels.DashboardView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()

	sheet := "Sheet1"
	if err := writeKpiSheet(f, sheet, data.Kpi); err != nil {
		return nil, errors.Wrap(err, "failed to build the KPI sheet")
	}
	f.SetSheetName(sheet, "KPI")

	if err := writeFunnelSheet(f, data.Funnel); err != nil {
		return nil, errors.Wrap(err, "failed to build the funnel sheet")
	}
	if err := writeTrendSheet(f, data.Trend); err != nil {
		return nil, errors.Wrap(err, "failed to build the trend sheet")
	}
	return f.WriteToBuffer()
}

func writeKpiSheet(f *excelize.File, sheet string, kpi analyticsapimodels.KpiView) error {
	row, err := writeHeader(f, sheet, 0, kpiHeaders)
	if err != nil {
		return err
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(kpiHeaders), row+4); err != nil {
		return err
	}
	rows := [][2]interface{}{
		{"Active jobs", kpi.ActiveJobs},
		{"Total applicants", kpi.TotalApplicants},
		{"Avg hiring cycle (days)", kpi.AvgHiringCycleDays},
		{"Offer acceptance rate", kpi.OfferAcceptanceRate},
	}
	for _, item := range rows {
		row++
		if err = writeColumn(f, sheet, 1, row, item[0]); err != nil {
			return err
		}
		if err = writeColumn(f, sheet, 2, row, item[1]); err != nil {
			return err
		}
	}
	return nil
}

func writeFunnelSheet(f *excelize.File, funnel []analyticsapimodels.FunnelStageView) error {
	sheet := "Funnel"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	row, err := writeHeader(f, sheet, 0, funnelHeaders)
	if err != nil {
		return err
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(funnelHeaders), row+len(funnel)); err != nil {
		return err
	}
	for _, stage := range funnel {
		row++
		if err = writeColumn(f, sheet, 1, row, stage.StageLabel); err != nil {
			return err
		}
		if err = writeColumn(f, sheet, 2, row, stage.Count); err != nil {
			return err
		}
		if err = writeColumn(f, sheet, 3, row, stage.Conversion); err != nil {
			return err
		}
	}
	return nil
}

func writeTrendSheet(f *excelize.File, trend []analyticsapimodels.TrendPointView) error {
	sheet := "Trend"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	row, err := writeHeader(f, sheet, 0, trendHeaders)
	if err != nil {
		return err
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(trendHeaders), row+len(trend)); err != nil {
		return err
	}
	for _, point := range trend {
		row++
		if err = writeColumn(f, sheet, 1, row, point.Date); err != nil {
			return err
		}
		if err = writeColumn(f, sheet, 2, row, point.Count); err != nil {
			return err
		}
	}
	return nil
}

func (i impl) ExportApplicantList(list []applicantapimodels.ApplicantView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, applicantHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build the xlsx header")
	}
	if len(list) != 0 {
		if err = writeApplicantData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "failed to build the xlsx data table")
		}
	}
	f.SetSheetName(sheet, "Applicants")
	return f.WriteToBuffer()
}

func writeApplicantData(f *excelize.File, sheet string, list []applicantapimodels.ApplicantView, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicantHeaders), row+len(list)); err != nil {
		return err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.JobTitle); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.StageLabel); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.SourceLabel); err != nil {
			return err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.ApplicationDate.Format("2006-01-02")); err != nil {
			return err
		}

		col++
		if item.InterviewTime != nil {
			if err := writeColumn(f, sheet, col, row, item.InterviewTime.Format("2006-01-02 15:04")); err != nil {
				return err
			}
		}
	}
	return nil
}
