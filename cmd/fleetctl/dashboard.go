package main

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc"

	"liyu1981.xyz/factory-monitor/pkg/aiclient"
	fmGrpc "liyu1981.xyz/factory-monitor/pkg/grpc"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

// dashboard is what the commands need from a server, whichever transport reaches it.
type dashboard interface {
	Snapshot(ctx context.Context) (*models.DashboardView, error)
	Machine(ctx context.Context, machineID string) (*models.Machine, error)
	Alerts(ctx context.Context) ([]models.Alert, error)
	MachineAlerts(ctx context.Context, machineID string) ([]models.AlertRecord, error)
	Query(ctx context.Context, query string) (*aiclient.QueryResponse, error)
	Close() error
}

func (o *globalOptions) connect() (dashboard, error) {
	if o.grpcAddr != "" {
		return newGrpcDashboard(o.grpcAddr)
	}
	return newRestDashboard(o.httpURL), nil
}

type restDashboard struct {
	client *resty.Client
}

func newRestDashboard(baseURL string) *restDashboard {
	return &restDashboard{
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json"),
	}
}

func (d *restDashboard) do(ctx context.Context, method, path string, body, out any) error {
	apiErr := map[string]any{}
	req := d.client.R().SetContext(ctx).SetResult(out).SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s %s: %s: %v", method, path, resp.Status(), apiErr["error"])
	}
	return nil
}

func (d *restDashboard) Snapshot(ctx context.Context) (*models.DashboardView, error) {
	view := &models.DashboardView{}
	if err := d.do(ctx, resty.MethodGet, "/snapshot", nil, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (d *restDashboard) Machine(ctx context.Context, machineID string) (*models.Machine, error) {
	machine := &models.Machine{}
	if err := d.do(ctx, resty.MethodGet, "/machines/"+machineID, nil, machine); err != nil {
		return nil, err
	}
	return machine, nil
}

func (d *restDashboard) Alerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := d.do(ctx, resty.MethodGet, "/alerts", nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (d *restDashboard) MachineAlerts(ctx context.Context, machineID string) ([]models.AlertRecord, error) {
	var records []models.AlertRecord
	if err := d.do(ctx, resty.MethodGet, "/machines/"+machineID+"/alerts", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (d *restDashboard) Query(ctx context.Context, query string) (*aiclient.QueryResponse, error) {
	resp := &aiclient.QueryResponse{}
	if err := d.do(ctx, resty.MethodPost, "/query", map[string]string{"query": query}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (d *restDashboard) Close() error { return nil }

type grpcDashboard struct {
	conn   *grpc.ClientConn
	client *fmGrpc.DashboardClient
}

func newGrpcDashboard(addr string) (*grpcDashboard, error) {
	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("connect to gRPC server %s: %w", addr, err)
	}
	return &grpcDashboard{conn: conn, client: fmGrpc.NewDashboardClient(conn)}, nil
}

func (d *grpcDashboard) Snapshot(ctx context.Context) (*models.DashboardView, error) {
	return d.client.GetSnapshot(ctx)
}

func (d *grpcDashboard) Machine(ctx context.Context, machineID string) (*models.Machine, error) {
	return d.client.GetMachine(ctx, machineID)
}

func (d *grpcDashboard) Alerts(ctx context.Context) ([]models.Alert, error) {
	return d.client.GetAlerts(ctx)
}

func (d *grpcDashboard) MachineAlerts(ctx context.Context, machineID string) ([]models.AlertRecord, error) {
	return d.client.GetMachineAlerts(ctx, machineID)
}

func (d *grpcDashboard) Query(ctx context.Context, query string) (*aiclient.QueryResponse, error) {
	return d.client.Query(ctx, query)
}

func (d *grpcDashboard) Close() error { return d.conn.Close() }
