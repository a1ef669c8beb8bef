package cleanupworker

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"tpo-portal-backend/db"
	pushdatastore "tpo-portal-backend/lib/notification/push-store"
	baseworker "tpo-portal-backend/lib/utils/base-worker"
)

// StartWorker purges undelivered in-app notifications older than the retention period
func StartWorker(ctx context.Context, retention, interval time.Duration) {
	store := pushdatastore.NewInstance(db.DB)
	worker := baseworker.NewInstance("NotificationCleanupWorker", time.Minute, interval)
	go worker.Run(ctx, func(ctx context.Context) error {
		removed, err := Cleanup(store, retention, time.Now())
		if err != nil {
			return err
		}
		if removed > 0 {
			worker.GetLogger().WithField("removed", removed).Info("old notifications purged")
		}
		return nil
	})
}

func Cleanup(store pushdatastore.Provider, retention time.Duration, now time.Time) (int64, error) {
	removed, err := store.DeleteOlderThan(now.Add(-retention))
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge old notifications")
	}
	return removed, nil
}
