package eligibility

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "tpo-portal-backend/lib/utils/app-errors"
	dbmodels "tpo-portal-backend/models/db"
)

type Reason string

const (
	ReasonCgpaTooLow               Reason = "CGPA_TOO_LOW"
	ReasonHasBacklogs              Reason = "HAS_BACKLOGS"
	ReasonDepartmentNotAllowed     Reason = "DEPARTMENT_NOT_ALLOWED"
	ReasonGraduationYearNotAllowed Reason = "GRADUATION_YEAR_NOT_ALLOWED"
)

// Academic is the part of a student profile the criteria are checked against
type Academic struct {
	Cgpi           float64
	ActiveBacklogs bool
	Department     string
	GraduationYear int
}

func AcademicOf(profile dbmodels.StudentProfile) Academic {
	return Academic{
		Cgpi:           profile.Cgpi,
		ActiveBacklogs: profile.ActiveBacklogs,
		Department:     profile.Department,
		GraduationYear: profile.GraduationYear,
	}
}

type Failure struct {
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
}

type Result struct {
	Eligible bool      `json:"eligible"`
	Failures []Failure `json:"failures"`
}

// Err is nil for an eligible result, otherwise a PreconditionFailed listing every failure
func (r Result) Err() error {
	if r.Eligible {
		return nil
	}
	messages := make([]string, 0, len(r.Failures))
	for _, failure := range r.Failures {
		messages = append(messages, failure.Message)
	}
	return apperrors.PreconditionFailed(strings.Join(messages, "; "))
}

func Evaluate(student Academic, criteria dbmodels.EligibilityCriteria) Result {
	failures := []Failure{}
	if student.Cgpi < criteria.CgpaMin {
		failures = append(failures, Failure{
			Reason: ReasonCgpaTooLow,
			Message: fmt.Sprintf("CGPA (%s) is below minimum requirement (%s)",
				formatScore(student.Cgpi), formatScore(criteria.CgpaMin)),
		})
	}
	if student.ActiveBacklogs && criteria.MaxBacklogs == 0 {
		failures = append(failures, Failure{
			Reason:  ReasonHasBacklogs,
			Message: "active backlogs are not allowed for this job posting",
		})
	}
	if !containsString(criteria.AllowedBranches, student.Department) {
		failures = append(failures, Failure{
			Reason: ReasonDepartmentNotAllowed,
			Message: fmt.Sprintf("department (%s) is not eligible for this job posting (allowed: %s)",
				student.Department, strings.Join(criteria.AllowedBranches, ", ")),
		})
	}
	if len(criteria.AllowedGraduationYears) > 0 && !containsYear(criteria.AllowedGraduationYears, student.GraduationYear) {
		years := make([]string, 0, len(criteria.AllowedGraduationYears))
		for _, year := range criteria.AllowedGraduationYears {
			years = append(years, strconv.FormatInt(year, 10))
		}
		failures = append(failures, Failure{
			Reason: ReasonGraduationYearNotAllowed,
			Message: fmt.Sprintf("graduation year (%d) is not eligible for this job posting (allowed: %s)",
				student.GraduationYear, strings.Join(years, ", ")),
		})
	}
	return Result{
		Eligible: len(failures) == 0,
		Failures: failures,
	}
}

// formatScore keeps at least one decimal: 7 -> "7.0", 6.75 -> "6.75"
func formatScore(value float64) string {
	result := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(result, ".") {
		result += ".0"
	}
	return result
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func containsYear(list []int64, value int) bool {
	for _, item := range list {
		if item == int64(value) {
			return true
		}
	}
	return false
}
