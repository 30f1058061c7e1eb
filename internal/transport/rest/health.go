package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

const (
	statusOK   = "ok"
	statusDown = "down"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db       dbPinger
	version  string
	provider string
}

// NewHealthHandler reports version and the configured generation provider
// on /health alongside the database check.
func NewHealthHandler(db dbPinger, version, provider string) *HealthHandler {
	return &HealthHandler{db: db, version: version, provider: provider}
}

type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status   string `json:"status"`
	Latency  string `json:"latency,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 503 when the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health is Ready plus per-component detail. The generator is reported,
// not called.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{
		Status:  db.Status,
		Version: h.version,
		Components: map[string]CompStatus{
			"database":   db,
			"generation": {Status: "configured", Provider: h.provider},
		},
		Timestamp: time.Now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func httpStatus(status string) int {
	if status == statusOK {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
