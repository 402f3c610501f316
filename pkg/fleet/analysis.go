package fleet

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor/pkg/aiclient"
	"liyu1981.xyz/factory-monitor/pkg/alerting"
	"liyu1981.xyz/factory-monitor/pkg/common"
)

func (f *Fleet) analysisLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetAnalysis),
	)
}

func (f *Fleet) query(ctx context.Context, query string) (*aiclient.QueryResponse, error) {
	if f.AI == nil {
		return nil, ErrNoAIClient
	}
	view := f.current()
	if view == nil {
		return nil, ErrNoSnapshot
	}

	f.analysisLogger().Info("Forwarding query", zap.String("snapshot_id", view.Snapshot.ID), zap.Int("query_len", len(query)))

	return f.AI.Query(ctx, query, view.Machines)
}

// analyzeAlert escalates one of the currently displayed alerts as a maintenance request.
func (f *Fleet) analyzeAlert(ctx context.Context, alertID string) (*aiclient.QueryResponse, error) {
	if f.AI == nil {
		return nil, ErrNoAIClient
	}
	view := f.current()
	if view == nil {
		return nil, ErrNoSnapshot
	}

	alert, ok := view.Alert(alertID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlert, alertID)
	}

	f.analysisLogger().Info("Escalating alert", zap.Reflect("alert", alert))

	return f.AI.Query(ctx, alerting.MaintenancePrompt(alert), view.Machines)
}

func (f *Fleet) health(ctx context.Context) (*aiclient.HealthStatus, error) {
	if f.AI == nil {
		return nil, ErrNoAIClient
	}
	return f.AI.Health(ctx)
}

func (f *Fleet) toggleMode(ctx context.Context, mode aiclient.Mode) (*aiclient.ToggleResult, error) {
	if f.AI == nil {
		return nil, ErrNoAIClient
	}
	f.analysisLogger().Info("Switching analysis mode", zap.String("mode", string(mode)))
	return f.AI.ToggleMode(ctx, mode)
}

type IAnalysisImpl struct {
	fleet *Fleet
}

func (ia *IAnalysisImpl) Query(ctx context.Context, query string) (*aiclient.QueryResponse, error) {
	return ia.fleet.query(ctx, query)
}

func (ia *IAnalysisImpl) AnalyzeAlert(ctx context.Context, alertID string) (*aiclient.QueryResponse, error) {
	return ia.fleet.analyzeAlert(ctx, alertID)
}

func (ia *IAnalysisImpl) Health(ctx context.Context) (*aiclient.HealthStatus, error) {
	return ia.fleet.health(ctx)
}

func (ia *IAnalysisImpl) ToggleMode(ctx context.Context, mode aiclient.Mode) (*aiclient.ToggleResult, error) {
	return ia.fleet.toggleMode(ctx, mode)
}

func (f *Fleet) GetIAnalysis() IAnalysis {
	return &IAnalysisImpl{fleet: f}
}
