package pdfexport

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"tpo-portal-backend/models"
	statsapimodels "tpo-portal-backend/models/api/stats"
)

const reportTimeFormat = "02.01.2006 15:04"

// ReportFromDashboard lays the dashboard counters out as report sections
func ReportFromDashboard(d statsapimodels.Dashboard) models.ReportData {
	return models.ReportData{
		Title:       "Placement workflow statistics",
		GeneratedAt: d.GeneratedAt.Format(reportTimeFormat),
		Departments: d.Departments,
		Sections: []models.ReportSection{
			{
				Name: "Student profiles",
				Rows: [][2]string{
					{"Total", count(d.Profiles.Total)},
					{"Pending", count(d.Profiles.Pending)},
					{"Verified", count(d.Profiles.Verified)},
					{"On hold", count(d.Profiles.Hold)},
					{"Rejected", count(d.Profiles.Rejected)},
					{"Verification rate", d.Profiles.VerificationRate},
				},
			},
			{
				Name: "Job applications",
				Rows: [][2]string{
					{"Total", count(d.Applications.Total)},
					{"Awaiting department review", count(d.Applications.Pending)},
					{"Approved by department", count(d.Applications.Approved)},
					{"On hold", count(d.Applications.Hold)},
					{"Rejected", count(d.Applications.Rejected)},
					{"Approval rate", d.Applications.ApprovalRate},
				},
			},
		},
	}
}

func GenerateReport(data models.ReportData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, data.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	scope := "All departments"
	if len(data.Departments) != 0 {
		scope = "Departments: " + strings.Join(data.Departments, ", ")
	}
	pdf.CellFormat(0, 6, scope, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+data.GeneratedAt, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, section := range data.Sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(0, 8, section.Name, "1", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, row := range section.Rows {
			pdf.CellFormat(120, 7, row[0], "1", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, row[1], "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func count(value int64) string {
	return strconv.FormatInt(value, 10)
}
