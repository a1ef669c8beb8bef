package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	applicationapimodels "tpo-portal-backend/models/api/application"
	profileapimodels "tpo-portal-backend/models/api/profile"
)

const dateFormat = "02.01.2006"

type Provider interface {
	ExportCandidateList(list []profileapimodels.ProfileView) (*bytes.Buffer, error)
	ExportApplicationList(list []applicationapimodels.ApplicationView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateColumns = []column{
	{"Enrollment No", 16},
	{"Name", 28},
	{"Department", 14},
	{"Graduation year", 12},
	{"Semester", 10},
	{"CGPI", 8},
	{"Active backlogs", 10},
	{"Completion, %", 12},
	{"Status", 12},
	{"Verified at", 14},
}

var applicationColumns = []column{
	{"Submitted", 14},
	{"Enrollment No", 16},
	{"Name", 28},
	{"Department", 14},
	{"CGPI", 8},
	{"Job posting", 30},
	{"Status", 16},
	{"Department notes", 40},
	{"Rejection reason", 40},
}

func (i impl) ExportCandidateList(list []profileapimodels.ProfileView) (*bytes.Buffer, error) {
	return writeSheet("Candidates", candidateColumns, len(list), func(f *excelize.File, sheet string, row int) (int, error) {
		return writeCandidateData(f, sheet, list, row)
	})
}

func (i impl) ExportApplicationList(list []applicationapimodels.ApplicationView) (*bytes.Buffer, error) {
	return writeSheet("Applications", applicationColumns, len(list), func(f *excelize.File, sheet string, row int) (int, error) {
		return writeApplicationData(f, sheet, list, row)
	})
}

func writeSheet(name string, columns []column, size int, writeData func(f *excelize.File, sheet string, row int) (int, error)) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, errors.Wrap(err, "failed to rename xlsx sheet")
	}
	row, err := writeHeader(f, name, columns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if size != 0 {
		if err = applyDataCellStyle(f, name, 1, row+1, len(columns), row+size); err != nil {
			return nil, errors.Wrap(err, "failed to style xlsx data cells")
		}
		if _, err = writeData(f, name, row); err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data table")
		}
	}
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []profileapimodels.ProfileView, row int) (int, error) {
	for _, item := range list {
		row++
		verifiedAt := ""
		if item.TpoDeptVerifiedAt != nil {
			verifiedAt = item.TpoDeptVerifiedAt.Format(dateFormat)
		}
		values := []interface{}{
			item.EnrollmentNumber,
			item.FirstName + " " + item.LastName,
			item.Department,
			item.GraduationYear,
			item.CurrentSemester,
			item.Cgpi,
			yesNo(item.ActiveBacklogs),
			item.ProfileCompletePercent,
			string(item.ProfileStatus),
			verifiedAt,
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeApplicationData(f *excelize.File, sheet string, list []applicationapimodels.ApplicationView, row int) (int, error) {
	for _, item := range list {
		row++
		values := []interface{}{
			item.CreatedAt.Format(dateFormat),
			"", "", "", "",
			item.JobTitle,
			string(item.Status),
			item.DeptReviewNotes,
			item.RejectionReason,
		}
		if item.Student != nil {
			values[1] = item.Student.EnrollmentNumber
			values[2] = item.Student.FullName
			values[3] = item.Student.Department
			values[4] = item.Student.Cgpi
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for idx, value := range values {
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
