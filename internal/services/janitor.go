package services

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/renato0307/shotbook/internal/logging"
)

// StagingJanitor periodically evicts expired pending selections
type StagingJanitor struct {
	scheduler gocron.Scheduler
}

// NewStagingJanitor schedules a sweep of staging every interval.
// Call Start to begin and Shutdown to stop.
func NewStagingJanitor(staging *StagingService, interval time.Duration) (*StagingJanitor, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if evicted := staging.SweepExpired(); evicted > 0 {
				logging.Logger.Info("Expired selections evicted", "count", evicted, "remaining", staging.Len())
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("failed to schedule staging sweep: %w", err)
	}

	return &StagingJanitor{scheduler: sched}, nil
}

// Start begins running the sweep job
func (j *StagingJanitor) Start() {
	j.scheduler.Start()
}

// Shutdown stops the scheduler and waits for a running sweep to finish
func (j *StagingJanitor) Shutdown() error {
	return j.scheduler.Shutdown()
}
