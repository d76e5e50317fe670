package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/carealert-backend/internal/domain"
)

type reminderEventService interface {
	ListEvents(ctx context.Context, limit int) ([]domain.ReminderEvent, error)
}

// ReminderHandler serves reminder trigger history.
type ReminderHandler struct {
	svc reminderEventService
	log *slog.Logger
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(svc reminderEventService, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, log: logger.With("handler", "reminder")}
}

type reminderEventResponse struct {
	ID          string    `json:"id"`
	ReminderID  string    `json:"reminderId"`
	Title       string    `json:"title,omitempty"`
	TriggeredAt time.Time `json:"triggeredAt"`
	TriggerDate string    `json:"triggerDate"`
}

// Events handles GET /api/reminders/events?limit=
func (h *ReminderHandler) Events(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.svc.ListEvents(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]reminderEventResponse, len(events))
	for i, ev := range events {
		out[i] = reminderEventResponse{
			ID:          ev.ID.String(),
			ReminderID:  ev.ReminderID.String(),
			Title:       ev.Title,
			TriggeredAt: ev.TriggeredAt,
			TriggerDate: ev.TriggerDate.Format(time.DateOnly),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": out})
}
