package eligibility

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	apperrors "tpo-portal-backend/lib/utils/app-errors"
	dbmodels "tpo-portal-backend/models/db"
)

func TestEvaluate(t *testing.T) {
	criteria := dbmodels.EligibilityCriteria{
		CgpaMin:         7.0,
		MaxBacklogs:     0,
		AllowedBranches: pq.StringArray{"CSE", "IT"},
	}
	eligible := Academic{Cgpi: 8.1, Department: "CSE", GraduationYear: 2025}

	t.Run(`all checks pass`, func(t *testing.T) {
		result := Evaluate(eligible, criteria)
		require.True(t, result.Eligible)
		require.Empty(t, result.Failures)
		require.NoError(t, result.Err())
	})

	t.Run(`cgpa equal to minimum passes`, func(t *testing.T) {
		student := eligible
		student.Cgpi = 7.0
		require.True(t, Evaluate(student, criteria).Eligible)
	})

	t.Run(`cgpa below minimum`, func(t *testing.T) {
		student := eligible
		student.Cgpi = 6.5
		result := Evaluate(student, criteria)
		require.False(t, result.Eligible)
		require.Len(t, result.Failures, 1)
		require.Equal(t, ReasonCgpaTooLow, result.Failures[0].Reason)
		require.Equal(t, "CGPA (6.5) is below minimum requirement (7.0)", result.Failures[0].Message)
		err := result.Err()
		require.True(t, apperrors.Is(err, apperrors.KindPreconditionFailed))
		require.Equal(t, "CGPA (6.5) is below minimum requirement (7.0)", err.Error())
	})

	t.Run(`backlogs with zero allowance`, func(t *testing.T) {
		student := eligible
		student.ActiveBacklogs = true
		result := Evaluate(student, criteria)
		require.False(t, result.Eligible)
		require.Len(t, result.Failures, 1)
		require.Equal(t, ReasonHasBacklogs, result.Failures[0].Reason)
	})

	t.Run(`backlogs tolerated when allowance is positive`, func(t *testing.T) {
		student := eligible
		student.ActiveBacklogs = true
		relaxed := criteria
		relaxed.MaxBacklogs = 2
		require.True(t, Evaluate(student, relaxed).Eligible)
	})

	t.Run(`department not allowed`, func(t *testing.T) {
		student := eligible
		student.Department = "ECE"
		result := Evaluate(student, criteria)
		require.False(t, result.Eligible)
		require.Len(t, result.Failures, 1)
		require.Equal(t, ReasonDepartmentNotAllowed, result.Failures[0].Reason)
		require.Contains(t, result.Failures[0].Message, "ECE")
	})

	t.Run(`graduation years checked only when listed`, func(t *testing.T) {
		withYears := criteria
		withYears.AllowedGraduationYears = pq.Int64Array{2026}
		result := Evaluate(eligible, withYears)
		require.False(t, result.Eligible)
		require.Equal(t, ReasonGraduationYearNotAllowed, result.Failures[0].Reason)
		require.Equal(t, "graduation year (2025) is not eligible for this job posting (allowed: 2026)", result.Failures[0].Message)
	})

	t.Run(`every failure is reported`, func(t *testing.T) {
		student := Academic{Cgpi: 5, ActiveBacklogs: true, Department: "MECH"}
		result := Evaluate(student, criteria)
		require.False(t, result.Eligible)
		require.Len(t, result.Failures, 3)
		require.Contains(t, result.Err().Error(), "CGPA (5.0) is below minimum requirement (7.0)")
	})
}

func TestFormatScore(t *testing.T) {
	require.Equal(t, "7.0", formatScore(7))
	require.Equal(t, "6.5", formatScore(6.5))
	require.Equal(t, "8.25", formatScore(8.25))
	require.Equal(t, "0.0", formatScore(0))
}
