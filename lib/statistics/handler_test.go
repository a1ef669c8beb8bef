package statistics

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	applicationstore "tpo-portal-backend/lib/application-review/store"
	studentprofilestore "tpo-portal-backend/lib/student-profile/store"
	apperrors "tpo-portal-backend/lib/utils/app-errors"
	"tpo-portal-backend/models"
	dbmodels "tpo-portal-backend/models/db"
)

type profileStoreMock struct {
	studentprofilestore.Provider
	counts      []studentprofilestore.StatusCount
	departments []string
	err         error
}

func (m *profileStoreMock) CountByStatus(departments []string) ([]studentprofilestore.StatusCount, error) {
	m.departments = departments
	return m.counts, m.err
}

type applicationStoreMock struct {
	applicationstore.Provider
	counts      map[models.ApplicationStatus]int64
	departments []string
}

func (m *applicationStoreMock) CountByStatus(departments []string) (map[models.ApplicationStatus]int64, error) {
	m.departments = departments
	return m.counts, nil
}

type scopeMock struct {
	recs map[string]dbmodels.Coordinator
}

func (m scopeMock) GetCoordinator(userID string) (*dbmodels.Coordinator, error) {
	rec, ok := m.recs[userID]
	if !ok {
		return nil, apperrors.NotFound("coordinator")
	}
	return &rec, nil
}

func TestFormatRate(t *testing.T) {
	require.Equal(t, "0.00%", FormatRate(0, 0))
	require.Equal(t, "0.00%", FormatRate(5, 0))
	require.Equal(t, "50.00%", FormatRate(1, 2))
	require.Equal(t, "33.33%", FormatRate(1, 3))
	require.Equal(t, "100.00%", FormatRate(7, 7))
}

func TestProfileStats(t *testing.T) {
	t.Run(`buckets`, func(t *testing.T) {
		profiles := &profileStoreMock{counts: []studentprofilestore.StatusCount{
			{TpoDeptVerified: true, ProfileStatus: models.ProfileStatusVerified, Count: 3},
			{TpoDeptVerified: false, ProfileStatus: models.ProfileStatusPending, Count: 4},
			{TpoDeptVerified: false, ProfileStatus: models.ProfileStatusHold, Count: 2},
			{TpoDeptVerified: false, ProfileStatus: models.ProfileStatusRejected, Count: 1},
		}}
		provider := NewProvider(profiles, &applicationStoreMock{}, scopeMock{})
		stats, err := provider.ProfileStats([]string{"CSE"})
		require.NoError(t, err)
		require.Equal(t, int64(10), stats.Total)
		require.Equal(t, int64(3), stats.Verified)
		require.Equal(t, int64(4), stats.Pending)
		require.Equal(t, int64(2), stats.Hold)
		require.Equal(t, int64(1), stats.Rejected)
		require.Equal(t, "30.00%", stats.VerificationRate)
		require.Equal(t, []string{"CSE"}, profiles.departments)
	})

	t.Run(`empty scope`, func(t *testing.T) {
		provider := NewProvider(&profileStoreMock{}, &applicationStoreMock{}, scopeMock{})
		stats, err := provider.ProfileStats([]string{})
		require.NoError(t, err)
		require.Equal(t, int64(0), stats.Total)
		require.Equal(t, "0.00%", stats.VerificationRate)
	})

	t.Run(`store error`, func(t *testing.T) {
		provider := NewProvider(&profileStoreMock{err: errors.New("connection refused")}, &applicationStoreMock{}, scopeMock{})
		_, err := provider.ProfileStats([]string{"CSE"})
		require.Error(t, err)
		require.Equal(t, apperrors.Kind(""), apperrors.KindOf(err))
	})
}

func TestApplicationStats(t *testing.T) {
	applications := &applicationStoreMock{counts: map[models.ApplicationStatus]int64{
		models.ApplicationStatusSubmitted:    5,
		models.ApplicationStatusPendingAdmin: 2,
		models.ApplicationStatusForwarded:    1,
		models.ApplicationStatusHold:         1,
		models.ApplicationStatusRejected:     1,
	}}
	provider := NewProvider(&profileStoreMock{}, applications, scopeMock{})
	stats, err := provider.ApplicationStats([]string{"IT"})
	require.NoError(t, err)
	require.Equal(t, int64(10), stats.Total)
	require.Equal(t, int64(5), stats.Pending)
	require.Equal(t, int64(3), stats.Approved)
	require.Equal(t, int64(1), stats.Hold)
	require.Equal(t, int64(1), stats.Rejected)
	require.Equal(t, "30.00%", stats.ApprovalRate)
}

func TestDashboard(t *testing.T) {
	scope := scopeMock{recs: map[string]dbmodels.Coordinator{
		"coord-1": {UserID: "coord-1", PrimaryDepartment: "CSE", AssignedDepartments: []string{"IT"}, IsActive: true},
	}}

	t.Run(`coordinator is scoped to authorized departments`, func(t *testing.T) {
		profiles := &profileStoreMock{}
		applications := &applicationStoreMock{}
		provider := NewProvider(profiles, applications, scope)
		dashboard, err := provider.Dashboard("coord-1", models.CoordinatorRole)
		require.NoError(t, err)
		require.Equal(t, []string{"CSE", "IT"}, dashboard.Departments)
		require.Equal(t, []string{"CSE", "IT"}, profiles.departments)
		require.Equal(t, []string{"CSE", "IT"}, applications.departments)
		require.False(t, dashboard.GeneratedAt.IsZero())
	})

	t.Run(`admin sees the whole campus`, func(t *testing.T) {
		profiles := &profileStoreMock{}
		applications := &applicationStoreMock{}
		provider := NewProvider(profiles, applications, scope)
		dashboard, err := provider.Dashboard("admin-1", models.AdminRole)
		require.NoError(t, err)
		require.Empty(t, dashboard.Departments)
		require.Nil(t, profiles.departments)
		require.Nil(t, applications.departments)
	})

	t.Run(`unknown coordinator`, func(t *testing.T) {
		provider := NewProvider(&profileStoreMock{}, &applicationStoreMock{}, scope)
		_, err := provider.Dashboard("nobody", models.CoordinatorRole)
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})
}
