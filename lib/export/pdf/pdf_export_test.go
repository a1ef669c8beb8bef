package pdfexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	statsapimodels "tpo-portal-backend/models/api/stats"
)

func TestReportFromDashboard(t *testing.T) {
	data := ReportFromDashboard(statsapimodels.Dashboard{
		Departments: []string{"CSE", "IT"},
		Profiles:    statsapimodels.ProfileStats{Total: 8, Verified: 2, VerificationRate: "25.00%"},
		Applications: statsapimodels.ApplicationStats{
			Total:        4,
			Approved:     3,
			ApprovalRate: "75.00%",
		},
		GeneratedAt: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
	})
	require.Equal(t, "01.05.2026 09:30", data.GeneratedAt)
	require.Len(t, data.Sections, 2)
	require.Equal(t, [2]string{"Total", "8"}, data.Sections[0].Rows[0])
	require.Equal(t, [2]string{"Verification rate", "25.00%"}, data.Sections[0].Rows[5])
	require.Equal(t, [2]string{"Approved by department", "3"}, data.Sections[1].Rows[2])
}

func TestGenerateReport(t *testing.T) {
	file, err := GenerateReport(ReportFromDashboard(statsapimodels.Dashboard{GeneratedAt: time.Now()}))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(file, []byte("%PDF-")))
}
