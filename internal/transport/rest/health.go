package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/carealert-backend/internal/service/monitor"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

type healthReporter interface {
	Health(ctx context.Context) monitor.Health
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	monitor healthReporter
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, monitor healthReporter) *HealthHandler {
	return &HealthHandler{db: db, monitor: monitor}
}

// ProbeResponse is the JSON response for /live and /ready.
type ProbeResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ProbeResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, ProbeResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ProbeResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the detailed report: database latency plus recent alert and
// notification activity. 503 when the database is unreachable.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	report := h.monitor.Health(r.Context())

	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}
