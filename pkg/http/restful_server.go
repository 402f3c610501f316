package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"liyu1981.xyz/factory-monitor/pkg/fleet"
	"liyu1981.xyz/factory-monitor/pkg/stream"
)

const (
	DefaultSSEPollInterval = time.Second
	DefaultSSEHeartbeat    = 15 * time.Second
)

type RestfulServer struct {
	Server           *gin.Engine
	Fleet            *fleet.Fleet
	RateLimiterStore *fleet.RateLimiterStore
	Hub              *stream.Hub

	// zero values fall back to the defaults above
	SSEPollInterval time.Duration
	SSEHeartbeat    time.Duration
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.GET("/snapshot", rs.GetSnapshot)
	rs.Server.GET("/kpis", rs.GetKPIs)
	rs.Server.GET("/kpis/history", rs.GetKPIHistory)
	rs.Server.GET("/trends", rs.GetTrends)

	rs.Server.GET("/machines", rs.GetMachines)
	machines := rs.Server.Group("/machines/:machine_id")
	{
		machines.GET("", rs.GetMachine)
		machines.GET("/alerts", rs.GetMachineAlerts)
	}

	rs.Server.GET("/alerts", rs.GetAlerts)
	rs.Server.GET("/alerts/history", rs.GetAlertHistory)
	rs.Server.POST("/alerts/:alert_id/analyze", rs.AnalyzeAlert)

	rs.Server.POST("/query", rs.PostQuery)
	ai := rs.Server.Group("/ai")
	{
		ai.GET("/health", rs.GetAIHealth)
		ai.POST("/mode", rs.PostAIMode)
	}

	rs.Server.POST("/clients/:client_id/limiter", rs.PostLimiter)

	rs.Server.GET("/stream", rs.StreamSnapshots)
	rs.Server.GET("/ws", rs.ServeWebsocket)
}
