package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor/pkg/aiclient"
	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/fleet"
	"liyu1981.xyz/factory-monitor/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

const maxHistoryLimit = 500

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// currentView answers 503 itself when nothing has been generated yet.
func (rs *RestfulServer) currentView(c *gin.Context) (*models.DashboardView, bool) {
	view := rs.Fleet.Snapshot.Current()
	if view == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": fleet.ErrNoSnapshot.Error()})
		return nil, false
	}
	return view, true
}

func historyLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return fleet.DefaultHistoryLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxHistoryLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit should be an integer between 1 and 500"})
		return 0, false
	}
	return limit, true
}

func (rs *RestfulServer) GetSnapshot(c *gin.Context) {
	if view, ok := rs.currentView(c); ok {
		c.JSON(http.StatusOK, view)
	}
}

func (rs *RestfulServer) GetKPIs(c *gin.Context) {
	if view, ok := rs.currentView(c); ok {
		c.JSON(http.StatusOK, view.Snapshot.KPIs)
	}
}

func (rs *RestfulServer) GetTrends(c *gin.Context) {
	if view, ok := rs.currentView(c); ok {
		c.JSON(http.StatusOK, view.Snapshot.Trends)
	}
}

func (rs *RestfulServer) GetKPIHistory(c *gin.Context) {
	limit, ok := historyLimit(c)
	if !ok {
		return
	}

	records, err := rs.Fleet.History.GetKPIHistory(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

func (rs *RestfulServer) GetMachines(c *gin.Context) {
	if view, ok := rs.currentView(c); ok {
		c.JSON(http.StatusOK, view.Machines)
	}
}

func (rs *RestfulServer) GetMachine(c *gin.Context) {
	machineID := c.Param("machine_id")

	view, ok := rs.currentView(c)
	if !ok {
		return
	}

	machine, found := view.Machine(machineID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown machine " + machineID})
		return
	}

	c.JSON(http.StatusOK, machine)
}

func (rs *RestfulServer) GetMachineAlerts(c *gin.Context) {
	machineID := c.Param("machine_id")

	view, ok := rs.currentView(c)
	if !ok {
		return
	}
	if _, found := view.Machine(machineID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown machine " + machineID})
		return
	}

	var alerts []models.AlertRecord
	var err error
	if alerts, err = rs.Fleet.Alert.GetMachineAlerts(machineID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	if view, ok := rs.currentView(c); ok {
		c.JSON(http.StatusOK, view.Alerts)
	}
}

func (rs *RestfulServer) GetAlertHistory(c *gin.Context) {
	limit, ok := historyLimit(c)
	if !ok {
		return
	}

	alerts, err := rs.Fleet.Alert.GetRecentAlerts(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// analysisFailed maps fleet and AI service errors onto status codes.
func analysisFailed(c *gin.Context, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, fleet.ErrNoSnapshot), errors.Is(err, fleet.ErrNoAIClient):
		status = http.StatusServiceUnavailable
	case errors.Is(err, fleet.ErrUnknownAlert):
		status = http.StatusNotFound
	}

	if status == http.StatusBadGateway {
		common.GetLoggerWith(common.LoggerNameRestfulServer).
			Warn("AI analysis failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

type QueryRequest struct {
	Query string `json:"query"`
}

var queryRequestSchema = z.Struct(z.Shape{
	"query": z.String().Trim().Min(1).Max(4000).Required(),
})

func (rs *RestfulServer) PostQuery(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req QueryRequest
	if err := queryRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	resp, err := rs.Fleet.Analysis.Query(c.Request.Context(), req.Query)
	if err != nil {
		analysisFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (rs *RestfulServer) AnalyzeAlert(c *gin.Context) {
	alertID := c.Param("alert_id")

	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	resp, err := rs.Fleet.Analysis.AnalyzeAlert(c.Request.Context(), alertID)
	if err != nil {
		analysisFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (rs *RestfulServer) GetAIHealth(c *gin.Context) {
	health, err := rs.Fleet.Analysis.Health(c.Request.Context())
	if err != nil {
		analysisFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, health)
}

type ModeRequest struct {
	Mode string `json:"mode"`
}

var modeRequestSchema = z.Struct(z.Shape{
	"mode": z.String().OneOf([]string{string(aiclient.ModeOnline), string(aiclient.ModeOffline)}).Required(),
})

func (rs *RestfulServer) PostAIMode(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ModeRequest
	if err := modeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	result, err := rs.Fleet.Analysis.ToggleMode(c.Request.Context(), aiclient.Mode(req.Mode))
	if err != nil {
		analysisFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().GTE(0).Required(),
	"burst": z.Int().GTE(0).Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	clientID := c.Param("client_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(clientID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
