package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/carealert-backend/internal/service/monitor"
)

type statsService interface {
	Stats(ctx context.Context) (*monitor.Stats, error)
}

// StatsHandler serves the usage report.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

// Stats handles GET /api/stats. Caregivers and admins only.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
