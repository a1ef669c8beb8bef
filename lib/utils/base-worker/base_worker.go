package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Job is one run of a periodic worker
type Job func(ctx context.Context) error

type BaseImpl struct {
	WorkerName    string
	firstRunDelay time.Duration
	runInterval   time.Duration
}

func NewInstance(workerName string, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		WorkerName:    workerName,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	return log.WithField("worker_name", i.WorkerName)
}

// Run calls job after the first run delay and then every run interval until ctx is done.
// A failed or panicking run is logged and the worker keeps going.
func (i BaseImpl) Run(ctx context.Context, job Job) {
	logger := i.GetLogger()
	timer := time.NewTimer(i.firstRunDelay)
	defer timer.Stop()
	failedRuns := 0
	for {
		select {
		case <-ctx.Done():
			logger.Info("worker stopped")
			return
		case <-timer.C:
		}
		if ctx.Err() != nil {
			logger.Info("worker stopped")
			return
		}
		started := time.Now()
		err := i.runOnce(ctx, job)
		if err != nil {
			failedRuns++
			logger.
				WithError(err).
				WithField("failed_runs", failedRuns).
				Error("worker job failed")
		} else {
			failedRuns = 0
			logger.WithField("duration", time.Since(started).String()).Debug("worker job finished")
		}
		timer.Reset(i.runInterval)
	}
}

func (i BaseImpl) runOnce(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			i.GetLogger().WithField("panic_stack", string(debug.Stack())).Error("worker job panicked")
			err = errors.Errorf("panic: %v", r)
		}
	}()
	return job(ctx)
}
