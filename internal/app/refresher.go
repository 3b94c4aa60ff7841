package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/binetime/binetime/internal/platform/logging"
)

const refreshJobTimeout = 10 * time.Minute

// AwardRefresher is what the weekly job drives.
type AwardRefresher interface {
	RefreshAll(ctx context.Context) (int, error)
}

// RefreshSchedule recomputes every league's award sheet on Tuesday at 06:00
// in its location, after Monday night games settle.
type RefreshSchedule struct {
	scheduler gocron.Scheduler
	cancel    context.CancelFunc
}

func NewRefreshSchedule(refresher AwardRefresher, location *time.Location, logger *logging.Logger) (*RefreshSchedule, error) {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}

	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(location),
		gocron.WithLogger(logger),
		gocron.WithStopTimeout(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	rs := &RefreshSchedule{scheduler: scheduler, cancel: cancel}

	run := func() {
		jobCtx, done := context.WithTimeout(ctx, refreshJobTimeout)
		defer done()

		started := time.Now()
		refreshed, err := refresher.RefreshAll(jobCtx)
		if err != nil {
			logger.ErrorContext(jobCtx, "award refresh finished with errors",
				"refreshed", refreshed,
				"duration_ms", time.Since(started).Milliseconds(),
				"error", err,
			)
			return
		}
		logger.InfoContext(jobCtx, "award refresh finished",
			"refreshed", refreshed,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	}

	_, err = scheduler.NewJob(
		gocron.WeeklyJob(1,
			gocron.NewWeekdays(time.Tuesday),
			gocron.NewAtTimes(gocron.NewAtTime(6, 0, 0)),
		),
		gocron.NewTask(run),
		gocron.WithName("refresh-awards"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("schedule award refresh: %w", err)
	}
	return rs, nil
}

func (rs *RefreshSchedule) Start() {
	rs.scheduler.Start()
}

// NextRun reports when the refresh fires next.
func (rs *RefreshSchedule) NextRun() (time.Time, bool) {
	for _, job := range rs.scheduler.Jobs() {
		if next, err := job.NextRun(); err == nil {
			return next, true
		}
	}
	return time.Time{}, false
}

// Stop cancels a running refresh; Shutdown waits for it to return.
func (rs *RefreshSchedule) Stop() error {
	rs.cancel()
	return rs.scheduler.Shutdown()
}
