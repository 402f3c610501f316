package aiclient

import (
	"encoding/json"

	"liyu1981.xyz/factory-monitor/pkg/models"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type QueryRequest struct {
	Query    string           `json:"query"`
	Machines []models.Machine `json:"machines"`
}

type QueryResponse struct {
	Success       bool            `json:"success"`
	Response      string          `json:"response"`
	ModelUsed     string          `json:"model_used,omitempty"`
	Provider      string          `json:"provider,omitempty"`
	OfflineMode   bool            `json:"offline_mode"`
	Error         string          `json:"error,omitempty"`
	RateLimitInfo json.RawMessage `json:"rate_limit_info,omitempty"`
}

// Model reports the model name when the service sent one, else the provider.
func (r *QueryResponse) Model() string {
	if r.ModelUsed != "" {
		return r.ModelUsed
	}
	return r.Provider
}

// AnalyzeRequest always carries a null query; the service builds its own prompt.
type AnalyzeRequest struct {
	Machines []models.Machine `json:"machines"`
	Query    *string          `json:"query"`
}

type AnalyzeResponse struct {
	Success     bool            `json:"success"`
	Analysis    json.RawMessage `json:"analysis,omitempty"`
	ModelUsed   string          `json:"model_used,omitempty"`
	Provider    string          `json:"provider,omitempty"`
	Mode        Mode            `json:"mode,omitempty"`
	OfflineMode bool            `json:"offline_mode"`
	Error       string          `json:"error,omitempty"`
}

type HealthStatus struct {
	Status          string          `json:"status"`
	Mode            Mode            `json:"mode"`
	OfflineMode     bool            `json:"offline_mode"`
	APIWorking      bool            `json:"api_working"`
	CurrentProvider string          `json:"current_provider"`
	CurrentModel    string          `json:"current_model"`
	RateLimitInfo   json.RawMessage `json:"rate_limit_info,omitempty"`
}

// Available is false when the service answers but cannot reach a model.
func (h *HealthStatus) Available() bool {
	return h.APIWorking && !h.OfflineMode
}

type ModelStatus struct {
	Success             bool            `json:"success"`
	Mode                Mode            `json:"mode"`
	APIWorking          bool            `json:"api_working"`
	CurrentModel        string          `json:"current_model"`
	Provider            string          `json:"provider"`
	OllamaAvailable     bool            `json:"ollama_available"`
	OpenRouterAvailable bool            `json:"openrouter_available"`
	RateLimitInfo       json.RawMessage `json:"rate_limit_info,omitempty"`
}

type ToggleRequest struct {
	Mode Mode `json:"mode"`
}

type ToggleResult struct {
	Success  bool   `json:"success"`
	Mode     Mode   `json:"mode"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

type MemoryStatus struct {
	MemoryStatus json.RawMessage `json:"memory_status"`
}

type RetryResult struct {
	Success       bool            `json:"success"`
	APIAvailable  bool            `json:"api_available"`
	Message       string          `json:"message"`
	RateLimitInfo json.RawMessage `json:"rate_limit_info,omitempty"`
}
