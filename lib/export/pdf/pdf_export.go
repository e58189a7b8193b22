package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	applicantapimodels "talentflow-backend/models/api/applicant"
)

// GenerateApplicantProfile renders a one-page applicant summary with the
// feedback trail, for sharing outside the system.
func GenerateApplicantProfile(rec applicantapimodels.ApplicantView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateApplicantProfile panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 12, rec.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Position: %s", rec.JobTitle), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Stage: %s", rec.StageLabel), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Source: %s", rec.SourceLabel), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Email: %s   Phone: %s", rec.Email, rec.Phone), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Applied: %s", rec.ApplicationDate.Format("2006-01-02")), "", 1, "L", false, 0, "")
	if rec.InterviewTime != nil {
		names := ""
		for idx, ir := range rec.Interviewers {
			if idx > 0 {
				names += ", "
			}
			names += ir.Name
		}
		pdf.CellFormat(0, 7, fmt.Sprintf("Interview: %s (%s)", rec.InterviewTime.Format("2006-01-02 15:04"), names), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, "Feedback", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	if len(rec.Feedback) == 0 {
		pdf.CellFormat(0, 7, "No feedback yet.", "", 1, "L", false, 0, "")
	}
	for _, fb := range rec.Feedback {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, fmt.Sprintf("%s (%d/5)", fb.Author, fb.Rating), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, fb.Comment, "", "L", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render the applicant profile pdf")
	}
	return buf.Bytes(), nil
}
