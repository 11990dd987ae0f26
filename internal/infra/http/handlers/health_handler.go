package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/cazeai/bizcon-outreach/internal/config"
)

type HealthHandler struct {
	Cfg       *config.Config
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{Cfg: cfg, StartTime: time.Now()}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if _, err := os.Stat(h.Cfg.LeadsPath); err == nil {
		deps["leads_store"] = "healthy"
	} else {
		deps["leads_store"] = "not found"
	}

	if _, err := os.Stat(h.Cfg.ReportPath); err == nil {
		deps["report_store"] = "healthy"
	} else {
		deps["report_store"] = "not found"
	}

	if h.Cfg.SenderEmail != "" && h.Cfg.SenderPassword != "" {
		deps["smtp"] = "configured"
	} else {
		deps["smtp"] = "not configured"
	}

	if h.Cfg.AzureEndpoint != "" && h.Cfg.AzureAPIKey != "" {
		deps["azure_openai"] = "configured"
	} else {
		deps["azure_openai"] = "not configured"
	}

	if h.Cfg.ChromaURL != "" {
		deps["chroma"] = "configured"
	} else {
		deps["chroma"] = "not configured"
	}

	// Stores are created lazily, so a missing file is degraded, not down.
	status := "healthy"
	if deps["smtp"] == "not configured" || deps["azure_openai"] == "not configured" {
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
