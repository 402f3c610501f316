package fleet

import (
	"context"
	"errors"
	"time"

	"liyu1981.xyz/factory-monitor/pkg/aiclient"
	"liyu1981.xyz/factory-monitor/pkg/db"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

var (
	ErrNoSnapshot   = errors.New("no snapshot generated yet")
	ErrUnknownAlert = errors.New("unknown alert")
	ErrNoAIClient   = errors.New("ai client not available")
)

type ISnapshot interface {
	Tick(ctx context.Context, now time.Time) (*models.DashboardView, error)
	Current() *models.DashboardView
}

type IAlert interface {
	StoreAlerts(snapshotID string, at time.Time, alerts []models.Alert) error
	GetMachineAlerts(machineID string) ([]models.AlertRecord, error)
	GetRecentAlerts(limit int) ([]models.AlertRecord, error)
}

type IHistory interface {
	RecordKPIs(snapshotID string, at time.Time, kpis models.KPIData) error
	GetKPIHistory(limit int) ([]models.KPIRecord, error)
}

type IAnalysis interface {
	Query(ctx context.Context, query string) (*aiclient.QueryResponse, error)
	AnalyzeAlert(ctx context.Context, alertID string) (*aiclient.QueryResponse, error)
	Health(ctx context.Context) (*aiclient.HealthStatus, error)
	ToggleMode(ctx context.Context, mode aiclient.Mode) (*aiclient.ToggleResult, error)
}

// AIClient is the part of the analysis service the fleet forwards to.
type AIClient interface {
	Query(ctx context.Context, query string, machines []models.Machine) (*aiclient.QueryResponse, error)
	Health(ctx context.Context) (*aiclient.HealthStatus, error)
	ToggleMode(ctx context.Context, mode aiclient.Mode) (*aiclient.ToggleResult, error)
}

// Publisher receives every new dashboard view. A failing publisher never stops a tick.
type Publisher interface {
	Publish(ctx context.Context, view *models.DashboardView) error
}

type Fleet struct {
	Db         db.DB
	Simulator  *Simulator
	AI         AIClient
	Snapshot   ISnapshot
	Alert      IAlert
	History    IHistory
	Analysis   IAnalysis
	Publishers []Publisher
}

type ServiceOpts struct {
	Snapshot ISnapshot
	Alert    IAlert
	History  IHistory
	Analysis IAnalysis
}

func (f *Fleet) WithServices(opts ServiceOpts) *Fleet {
	if opts.Snapshot != nil {
		f.Snapshot = opts.Snapshot
	}
	if opts.Alert != nil {
		f.Alert = opts.Alert
	}
	if opts.History != nil {
		f.History = opts.History
	}
	if opts.Analysis != nil {
		f.Analysis = opts.Analysis
	}
	return f
}

func (f *Fleet) WithPublishers(publishers ...Publisher) *Fleet {
	f.Publishers = append(f.Publishers, publishers...)
	return f
}

// New wires the default services around a simulator.
func New(conn db.DB, sim *Simulator, ai AIClient) *Fleet {
	f := &Fleet{Db: conn, Simulator: sim, AI: ai}
	return f.WithServices(ServiceOpts{
		Snapshot: f.GetISnapshot(),
		Alert:    f.GetIAlert(),
		History:  f.GetIHistory(),
		Analysis: f.GetIAnalysis(),
	})
}
