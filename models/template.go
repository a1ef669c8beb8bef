package models

// ReportData is the content of the statistics PDF report
type ReportData struct {
	Title       string
	GeneratedAt string
	Departments []string
	Sections    []ReportSection
}

type ReportSection struct {
	Name string
	Rows [][2]string
}
