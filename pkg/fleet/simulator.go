package fleet

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor/pkg/alerting"
	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/models"
	"liyu1981.xyz/factory-monitor/pkg/rotator"
	"liyu1981.xyz/factory-monitor/pkg/telemetry"
)

// Simulator owns the rotating override state between ticks. The scheduler ticks it while
// transport goroutines read the latest view, so every access goes through mu.
type Simulator struct {
	mu        sync.RWMutex
	generator *telemetry.Generator
	rotator   *rotator.Rotator
	overrides models.Overrides
	view      *models.DashboardView
}

func NewSimulator(src telemetry.Source, opts telemetry.GeneratorOpts) *Simulator {
	return &Simulator{
		generator: telemetry.NewGenerator(src, opts),
		rotator:   rotator.New(src),
	}
}

// Tick generates a new snapshot, advances the overrides and derives the displayed alerts.
func (s *Simulator) Tick(now time.Time) *models.DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.generator.Generate(now)
	s.overrides = s.rotator.Advance(s.overrides, snapshot.Machines, now)
	machines := rotator.Apply(s.overrides, snapshot.Machines)

	s.view = &models.DashboardView{
		Snapshot:  snapshot,
		Machines:  machines,
		Alerts:    alerting.DeriveAlerts(machines, now),
		Overrides: s.overrides,
	}

	common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetRotator),
	).Debug("Overrides advanced",
		zap.String("snapshot_id", snapshot.ID),
		zap.Int("critical", len(s.overrides.Critical)),
		zap.Int("warning", len(s.overrides.Warning)),
	)

	return s.view
}

// Current returns the latest view, nil before the first tick. Views are never mutated after
// they are published.
func (s *Simulator) Current() *models.DashboardView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}
