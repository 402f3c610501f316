package grpc

import (
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"liyu1981.xyz/factory-monitor/pkg/fleet"
)

type DashboardServer struct {
	Fleet            *fleet.Fleet
	RateLimiterStore *fleet.RateLimiterStore
}

func (ds *DashboardServer) GetLimiter(clientKey string) *rate.Limiter {
	if ds.RateLimiterStore == nil {
		return nil
	} else {
		return ds.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (ds *DashboardServer) CheckClientLimiter(clientKey string) bool {
	limiter := ds.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// RateLimitedMethods are the calls that reach the AI service.
var RateLimitedMethods = []string{FullMethodQuery}

// NewServer registers ds on a fresh grpc server with the rate limit interceptor in front.
func NewServer(ds *DashboardServer, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.UnaryInterceptor(ds.CreateRateLimitInterceptor(RateLimitedMethods)))
	server := grpc.NewServer(opts...)
	RegisterDashboardServiceServer(server, ds)
	return server
}
