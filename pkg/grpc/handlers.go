package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/fleet"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

func validateMachineID(machineID *string) z.ZogIssueList {
	var machineIDValidator = z.String().Min(1).Required()
	return machineIDValidator.Validate(machineID)
}

func validateQuery(query *string) z.ZogIssueList {
	var queryValidator = z.String().Trim().Min(1).Max(4000).Required()
	return queryValidator.Validate(query)
}

func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

func toList[T any](items []T) (*structpb.ListValue, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out := &structpb.ListValue{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

func (ds *DashboardServer) currentView() (*models.DashboardView, error) {
	view := ds.Fleet.Snapshot.Current()
	if view == nil {
		return nil, status.Error(codes.Unavailable, fleet.ErrNoSnapshot.Error())
	}
	return view, nil
}

func (ds *DashboardServer) GetSnapshot(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	view, err := ds.currentView()
	if err != nil {
		return nil, err
	}
	return toStruct(view)
}

func (ds *DashboardServer) GetMachine(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	machineID := req.GetValue()
	if err := validateMachineID(&machineID); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: %v", err)
	}

	view, err := ds.currentView()
	if err != nil {
		return nil, err
	}

	machine, ok := view.Machine(machineID)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "machine %s not found", machineID)
	}
	return toStruct(machine)
}

func (ds *DashboardServer) GetAlerts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	view, err := ds.currentView()
	if err != nil {
		return nil, err
	}
	return toList(view.Alerts)
}

func (ds *DashboardServer) GetMachineAlerts(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	machineID := req.GetValue()
	if err := validateMachineID(&machineID); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: %v", err)
	}

	records, err := ds.Fleet.Alert.GetMachineAlerts(machineID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return toList(records)
}

func (ds *DashboardServer) Query(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	query := req.GetValue()
	if err := validateQuery(&query); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: %v", err)
	}

	resp, err := ds.Fleet.Analysis.Query(ctx, query)
	if err != nil {
		if errors.Is(err, fleet.ErrNoSnapshot) || errors.Is(err, fleet.ErrNoAIClient) {
			return nil, status.Error(codes.Unavailable, err.Error())
		}
		common.GetLoggerWith(common.LoggerNameGrpcServer).
			Warn("AI query failed", zap.Error(err))
		return nil, status.Error(codes.Unavailable, fmt.Sprintf("ai query failed: %v", err))
	}
	return toStruct(resp)
}
