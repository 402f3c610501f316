// Package aiclient talks to the external AI analysis service over plain JSON REST.
package aiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

var (
	// ErrAnalysisFailed is returned when the service answers with success=false.
	ErrAnalysisFailed = errors.New("ai analysis failed")
	// ErrServiceStatus is returned for any non-2xx answer.
	ErrServiceStatus = errors.New("ai service returned an error status")
)

type Timeouts struct {
	Status       time.Duration
	QueryOnline  time.Duration
	QueryOffline time.Duration
	Analyze      time.Duration
}

var DefaultTimeouts = Timeouts{
	Status:       8 * time.Second,
	QueryOnline:  20 * time.Second,
	QueryOffline: 120 * time.Second,
	Analyze:      120 * time.Second,
}

type Client struct {
	httpClient *resty.Client
	timeouts   Timeouts
	logger     *zap.Logger

	mu   sync.RWMutex
	mode Mode
}

func New(baseURL string, timeouts Timeouts) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		timeouts:   timeouts,
		logger:     common.GetLoggerWith(common.LoggerNameAIClient),
		mode:       ModeOnline,
	}
}

// Mode is the service mode as last reported by a health check or a toggle.
func (c *Client) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

func (c *Client) setMode(mode Mode) {
	if mode == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
}

func (c *Client) queryTimeout() time.Duration {
	if c.Mode() == ModeOffline {
		return c.timeouts.QueryOffline
	}
	return c.timeouts.QueryOnline
}

func (c *Client) call(ctx context.Context, method, path string, timeout time.Duration, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := c.httpClient.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("AI service call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return fmt.Errorf("failed to call AI service %s %s: %w", method, path, err)
	}

	if resp.IsError() {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(resp.Body(), &failure)
		if failure.Error == "" {
			failure.Error = resp.Status()
		}

		c.logger.Error("AI service returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("error", failure.Error),
		)
		return fmt.Errorf("%w: %s %d: %s", ErrServiceStatus, path, resp.StatusCode(), failure.Error)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		c.logger.Error("Failed to decode AI service response", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	c.logger.Info("AI service call done",
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var health HealthStatus
	if err := c.call(ctx, http.MethodGet, "/api/health", c.timeouts.Status, nil, &health); err != nil {
		return nil, err
	}
	c.setMode(health.Mode)
	return &health, nil
}

func (c *Client) ModelStatus(ctx context.Context) (*ModelStatus, error) {
	var status ModelStatus
	if err := c.call(ctx, http.MethodGet, "/api/model-status", c.timeouts.Status, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) ToggleMode(ctx context.Context, mode Mode) (*ToggleResult, error) {
	var result ToggleResult
	if err := c.call(ctx, http.MethodPost, "/api/toggle-mode", c.timeouts.Status, ToggleRequest{Mode: mode}, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return &result, fmt.Errorf("%w: %s", ErrAnalysisFailed, result.Error)
	}
	c.setMode(result.Mode)
	return &result, nil
}

// Query asks a free-text question with the displayed fleet attached as context.
func (c *Client) Query(ctx context.Context, query string, machines []models.Machine) (*QueryResponse, error) {
	var result QueryResponse
	req := QueryRequest{Query: query, Machines: machines}
	if err := c.call(ctx, http.MethodPost, "/api/query", c.queryTimeout(), req, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return &result, fmt.Errorf("%w: %s", ErrAnalysisFailed, result.Error)
	}
	return &result, nil
}

func (c *Client) Analyze(ctx context.Context, machines []models.Machine) (*AnalyzeResponse, error) {
	var result AnalyzeResponse
	req := AnalyzeRequest{Machines: machines}
	if err := c.call(ctx, http.MethodPost, "/api/analyze", c.timeouts.Analyze, req, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return &result, fmt.Errorf("%w: %s", ErrAnalysisFailed, result.Error)
	}
	return &result, nil
}

func (c *Client) MemoryStatus(ctx context.Context) (*MemoryStatus, error) {
	var status MemoryStatus
	if err := c.call(ctx, http.MethodGet, "/api/memory-status", c.timeouts.Status, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) RetryConnection(ctx context.Context) (*RetryResult, error) {
	var result RetryResult
	if err := c.call(ctx, http.MethodPost, "/api/retry-connection", c.timeouts.Status, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
