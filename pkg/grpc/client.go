package grpc

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"liyu1981.xyz/factory-monitor/pkg/aiclient"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

// DashboardClient calls DashboardService and decodes the payloads back into models.
type DashboardClient struct {
	cc grpc.ClientConnInterface
}

func NewDashboardClient(cc grpc.ClientConnInterface) *DashboardClient {
	return &DashboardClient{cc: cc}
}

func decode[T any](m proto.Message) (*T, error) {
	b, err := protojson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

func (c *DashboardClient) GetSnapshot(ctx context.Context, opts ...grpc.CallOption) (*models.DashboardView, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethodGetSnapshot, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return decode[models.DashboardView](out)
}

func (c *DashboardClient) GetMachine(ctx context.Context, machineID string, opts ...grpc.CallOption) (*models.Machine, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethodGetMachine, wrapperspb.String(machineID), out, opts...); err != nil {
		return nil, err
	}
	return decode[models.Machine](out)
}

func (c *DashboardClient) GetAlerts(ctx context.Context, opts ...grpc.CallOption) ([]models.Alert, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, FullMethodGetAlerts, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	alerts, err := decode[[]models.Alert](out)
	if err != nil {
		return nil, err
	}
	return *alerts, nil
}

func (c *DashboardClient) GetMachineAlerts(ctx context.Context, machineID string, opts ...grpc.CallOption) ([]models.AlertRecord, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, FullMethodGetMachineAlerts, wrapperspb.String(machineID), out, opts...); err != nil {
		return nil, err
	}
	records, err := decode[[]models.AlertRecord](out)
	if err != nil {
		return nil, err
	}
	return *records, nil
}

func (c *DashboardClient) Query(ctx context.Context, query string, opts ...grpc.CallOption) (*aiclient.QueryResponse, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethodQuery, wrapperspb.String(query), out, opts...); err != nil {
		return nil, err
	}
	return decode[aiclient.QueryResponse](out)
}
