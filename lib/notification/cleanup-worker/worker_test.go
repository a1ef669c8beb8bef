package cleanupworker

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	dbmodels "tpo-portal-backend/models/db"
)

type pushStoreMock struct {
	moment time.Time
	err    error
}

func (m *pushStoreMock) Create(rec dbmodels.PushData) error              { return nil }
func (m *pushStoreMock) List(userID string) ([]dbmodels.PushData, error) { return nil, nil }
func (m *pushStoreMock) Delete(ids []string) error                       { return nil }
func (m *pushStoreMock) DeleteOlderThan(moment time.Time) (int64, error) {
	m.moment = moment
	if m.err != nil {
		return 0, m.err
	}
	return 4, nil
}

func TestCleanup(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	t.Run("purges before retention boundary", func(t *testing.T) {
		store := &pushStoreMock{}
		removed, err := Cleanup(store, 30*24*time.Hour, now)
		require.NoError(t, err)
		require.EqualValues(t, 4, removed)
		require.Equal(t, time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC), store.moment)
	})
	t.Run("store error", func(t *testing.T) {
		_, err := Cleanup(&pushStoreMock{err: errors.New("connection refused")}, time.Hour, now)
		require.ErrorContains(t, err, "failed to purge old notifications")
	})
}
