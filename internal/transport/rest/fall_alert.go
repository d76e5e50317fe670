package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/service/fallalert"
)

type fallAlertService interface {
	Ingest(ctx context.Context, input fallalert.IngestInput) (*fallalert.IngestResult, error)
	List(ctx context.Context, input fallalert.ListInput) ([]domain.FallAlert, error)
	Get(ctx context.Context, alertID uuid.UUID) (*domain.FallAlert, error)
	Acknowledge(ctx context.Context, alertID uuid.UUID) (*domain.FallAlert, error)
}

// FallAlertHandler serves fall alert endpoints.
type FallAlertHandler struct {
	svc fallAlertService
	log *slog.Logger
}

// NewFallAlertHandler creates a FallAlertHandler.
func NewFallAlertHandler(svc fallAlertService, logger *slog.Logger) *FallAlertHandler {
	return &FallAlertHandler{svc: svc, log: logger.With("handler", "fall_alert")}
}

type fallAlertResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	UserName           string     `json:"userName,omitempty"`
	DetectedAt         time.Time  `json:"detectedAt"`
	Confidence         *float64   `json:"confidence"`
	ImageURL           *string    `json:"imageUrl"`
	FallType           *string    `json:"fallType"`
	Acknowledged       bool       `json:"acknowledged"`
	AcknowledgedBy     *string    `json:"acknowledgedBy"`
	AcknowledgedByName *string    `json:"acknowledgedByName,omitempty"`
	AcknowledgedAt     *time.Time `json:"acknowledgedAt"`
	EscalatedAt        *time.Time `json:"escalatedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func toFallAlertResponse(a *domain.FallAlert) fallAlertResponse {
	resp := fallAlertResponse{
		ID:                 a.ID.String(),
		UserID:             a.UserID.String(),
		UserName:           a.UserName,
		DetectedAt:         a.DetectedAt,
		Confidence:         a.Confidence,
		ImageURL:           a.ImageURL,
		FallType:           a.FallType,
		Acknowledged:       a.Acknowledged,
		AcknowledgedByName: a.AcknowledgedByName,
		AcknowledgedAt:     a.AcknowledgedAt,
		EscalatedAt:        a.EscalatedAt,
		CreatedAt:          a.CreatedAt,
	}
	if a.AcknowledgedBy != nil {
		by := a.AcknowledgedBy.String()
		resp.AcknowledgedBy = &by
	}
	return resp
}

// Ingest handles POST /api/fall-alerts. The body accepts camelCase and
// snake_case field names.
func (h *FallAlertHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeJSON(w, r, &body); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Ingest(r.Context(), fallalert.NormalizeIngestPayload(body))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// List handles GET /api/fall-alerts?acknowledged=&userId=&limit=
func (h *FallAlertHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	alerts, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]fallAlertResponse, len(alerts))
	for i := range alerts {
		out[i] = toFallAlertResponse(&alerts[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"fallAlerts": out})
}

func parseListInput(r *http.Request) (fallalert.ListInput, error) {
	var input fallalert.ListInput
	var errs []domain.FieldError

	if v := r.URL.Query().Get("acknowledged"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "acknowledged", Message: domain.MsgInvalidFormat})
		} else {
			input.Acknowledged = &b
		}
	}
	if v := firstQuery(r, "userId", "user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "userId", Message: domain.MsgInvalidFormat})
		} else {
			input.UserID = &id
		}
	}
	limit, err := queryLimit(r)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "limit", Message: domain.MsgInvalidFormat})
	}
	input.Limit = limit

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

// Get handles GET /api/fall-alerts/{id}.
func (h *FallAlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	alert, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFallAlertResponse(alert))
}

// Acknowledge handles POST /api/fall-alerts/{id}/acknowledge. Repeating the
// call returns the stored alert unchanged.
func (h *FallAlertHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	alert, err := h.svc.Acknowledge(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"fallAlert": toFallAlertResponse(alert)})
}
