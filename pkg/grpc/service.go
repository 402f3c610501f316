package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The dashboard service is declared by hand over protobuf well-known types, so neither side
// needs generated stubs. Payloads are the JSON forms of the models carried as Struct/ListValue.
const (
	ServiceName = "factory.v1.DashboardService"

	FullMethodGetSnapshot      = "/" + ServiceName + "/GetSnapshot"
	FullMethodGetMachine       = "/" + ServiceName + "/GetMachine"
	FullMethodGetAlerts        = "/" + ServiceName + "/GetAlerts"
	FullMethodGetMachineAlerts = "/" + ServiceName + "/GetMachineAlerts"
	FullMethodQuery            = "/" + ServiceName + "/Query"
)

type DashboardServiceServer interface {
	GetSnapshot(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// GetMachine takes a machine id.
	GetMachine(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	// GetAlerts returns the alerts of the current view.
	GetAlerts(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	// GetMachineAlerts returns the stored alert history of one machine, newest first.
	GetMachineAlerts(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	// Query forwards a free-text question to the AI analysis service.
	Query(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

func RegisterDashboardServiceServer(s grpc.ServiceRegistrar, srv DashboardServiceServer) {
	s.RegisterService(&DashboardService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(DashboardServiceServer, context.Context, *Req) (Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DashboardServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(DashboardServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var DashboardService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DashboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSnapshot",
			Handler:    unaryHandler(FullMethodGetSnapshot, DashboardServiceServer.GetSnapshot),
		},
		{
			MethodName: "GetMachine",
			Handler:    unaryHandler(FullMethodGetMachine, DashboardServiceServer.GetMachine),
		},
		{
			MethodName: "GetAlerts",
			Handler:    unaryHandler(FullMethodGetAlerts, DashboardServiceServer.GetAlerts),
		},
		{
			MethodName: "GetMachineAlerts",
			Handler:    unaryHandler(FullMethodGetMachineAlerts, DashboardServiceServer.GetMachineAlerts),
		},
		{
			MethodName: "Query",
			Handler:    unaryHandler(FullMethodQuery, DashboardServiceServer.Query),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "factory/v1/dashboard.proto",
}
