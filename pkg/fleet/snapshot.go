package fleet

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

const publishTimeout = 5 * time.Second

func (f *Fleet) tick(ctx context.Context, now time.Time) (*models.DashboardView, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetSnapshot),
	)

	if f.Simulator == nil {
		return nil, fmt.Errorf("simulator not available")
	}

	view := f.Simulator.Tick(now)

	logger.Info("Snapshot generated",
		zap.String("snapshot_id", view.Snapshot.ID),
		zap.Int("machines", len(view.Machines)),
		zap.Int("alerts", len(view.Alerts)),
	)

	if f.Alert == nil {
		return view, fmt.Errorf("alert service not available")
	}
	if err := f.Alert.StoreAlerts(view.Snapshot.ID, now, view.Alerts); err != nil {
		logger.Error("Failed to store alerts", zap.String("snapshot_id", view.Snapshot.ID), zap.Error(err))
		return view, fmt.Errorf("store alerts: %w", err)
	}

	if f.History == nil {
		return view, fmt.Errorf("history service not available")
	}
	if err := f.History.RecordKPIs(view.Snapshot.ID, now, view.Snapshot.KPIs); err != nil {
		logger.Error("Failed to record kpis", zap.String("snapshot_id", view.Snapshot.ID), zap.Error(err))
		return view, fmt.Errorf("record kpis: %w", err)
	}

	for _, p := range f.Publishers {
		pctx, cancel := context.WithTimeout(ctx, publishTimeout)
		if err := p.Publish(pctx, view); err != nil {
			logger.Warn("Publisher failed", zap.String("publisher", fmt.Sprintf("%T", p)), zap.Error(err))
		}
		cancel()
	}

	return view, nil
}

func (f *Fleet) current() *models.DashboardView {
	if f.Simulator == nil {
		return nil
	}
	return f.Simulator.Current()
}

type ISnapshotImpl struct {
	fleet *Fleet
}

func (is *ISnapshotImpl) Tick(ctx context.Context, now time.Time) (*models.DashboardView, error) {
	return is.fleet.tick(ctx, now)
}

func (is *ISnapshotImpl) Current() *models.DashboardView {
	return is.fleet.current()
}

func (f *Fleet) GetISnapshot() ISnapshot {
	return &ISnapshotImpl{fleet: f}
}
