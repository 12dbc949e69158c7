package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"list_starling/shared"
)

type IScheduler interface {
	// NextRun is the next scheduled fire time; zero when no schedule is set.
	NextRun() time.Time
}

type scheduler struct {
	cfg    *shared.Config
	logger shared.ILogger
	runner IDigestRunner
	cron   *cron.Cron
	entry  cron.EntryID
}

// NewScheduler fires digest runs per cfg.RunSchedule (standard cron syntax).
// An empty schedule means digests are manual only.
func NewScheduler(cfg *shared.Config, logger shared.ILogger, lc fx.Lifecycle,
	runner IDigestRunner,
) (IScheduler, error) {

	sch := &scheduler{cfg: cfg, logger: logger, runner: runner}
	if cfg.RunSchedule == "" {
		logger.Printf("No run schedule configured; digests are manual only")
		return sch, nil
	}

	sch.cron = cron.New()
	entry, err := sch.cron.AddFunc(cfg.RunSchedule, sch.fire)
	if err != nil {
		return nil, fmt.Errorf("invalid run schedule '%s': %v", cfg.RunSchedule, err)
	}
	sch.entry = entry

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sch.cron.Start()
			logger.Printf("Scheduler started: %s", cfg.RunSchedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Printf("Stopping scheduler")
			stopCtx := sch.cron.Stop()
			// Wait for a job in flight, but not longer than shutdown allows
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return sch, nil
}

func (sch *scheduler) fire() {
	_, err := sch.runner.Start("schedule")
	if err == nil {
		return
	}
	if errors.Is(err, ErrRunInProgress) {
		sch.logger.Warn("Scheduled run skipped: previous run still in progress")
		return
	}
	sch.logger.Errorf("Scheduled run failed to start: %v", err)
}

func (sch *scheduler) NextRun() time.Time {
	if sch.cron == nil {
		return time.Time{}
	}
	return sch.cron.Entry(sch.entry).Next
}
