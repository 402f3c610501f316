package fleet

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor/pkg/common"
)

// Scheduler ticks the fleet on a fixed interval. A tick that overruns the interval makes the
// next one skip rather than pile up.
type Scheduler struct {
	cron     *cron.Cron
	fleet    *Fleet
	interval time.Duration
	logger   *zap.Logger
}

func NewScheduler(f *Fleet, interval time.Duration) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		fleet:    f,
		interval: interval,
		logger: common.GetLoggerWith(
			common.LoggerNameFleetCore,
			zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetScheduler),
		),
	}
}

// Spec is the cron expression the scheduler registers.
func (s *Scheduler) Spec() string {
	return fmt.Sprintf("@every %s", s.interval)
}

func (s *Scheduler) runOnce() {
	if _, err := s.fleet.Snapshot.Tick(context.Background(), time.Now()); err != nil {
		s.logger.Error("Scheduled tick failed", zap.Error(err))
	}
}

// Start produces the first snapshot right away, then one per interval.
func (s *Scheduler) Start() error {
	if s.interval < time.Second {
		return fmt.Errorf("tick interval %s is below one second", s.interval)
	}

	if _, err := s.cron.AddFunc(s.Spec(), s.runOnce); err != nil {
		return fmt.Errorf("schedule %q: %w", s.Spec(), err)
	}

	s.runOnce()
	s.cron.Start()

	s.logger.Info("Scheduler started", zap.String("spec", s.Spec()))
	return nil
}

// Stop waits for a running tick to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	s.logger.Info("Scheduler stopped")
}
