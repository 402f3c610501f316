package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"liyu1981.xyz/factory-monitor/pkg/common"
)

const unknownPeer = "unknown"

// peerKey identifies the caller by remote address; every call over one bufconn/unix
// connection shares a bucket.
func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return unknownPeer
	}
	return p.Addr.String()
}

func (ds *DashboardServer) CreateRateLimitInterceptor(targetMethods []string) grpc.UnaryServerInterceptor {
	targetMethodMap := common.Reducer(targetMethods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if _, ok := targetMethodMap[info.FullMethod]; ok {
			clientKey := peerKey(ctx)
			if !ds.CheckClientLimiter(clientKey) {
				common.GetLoggerWith(common.LoggerNameGrpcServer).
					Debug("Rate limited", zap.String("method", info.FullMethod), zap.String("peer", clientKey))
				return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
			}
		}

		return handler(ctx, req)
	}
}
