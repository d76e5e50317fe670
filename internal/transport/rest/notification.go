package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/service/notification"
)

type notificationService interface {
	VAPIDPublicKey() (string, error)
	Subscribe(ctx context.Context, input notification.SubscribeInput) (bool, error)
	Unsubscribe(ctx context.Context, endpoint string) (bool, error)
	Logs(ctx context.Context, input notification.LogsInput) ([]domain.NotificationLogEntry, error)
	SendTestEmail(ctx context.Context, address string) (*notification.TestResult, error)
	SendTestSMS(ctx context.Context, phone string) (*notification.TestResult, error)
	SendTestPush(ctx context.Context) (*notification.TestResult, error)
}

// NotificationHandler serves push subscription, log and test-send endpoints.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type logEntryResponse struct {
	ID        string    `json:"id"`
	Channel   string    `json:"channel"`
	Category  string    `json:"category"`
	Recipient string    `json:"recipient"`
	Subject   *string   `json:"subject"`
	Status    string    `json:"status"`
	MessageID *string   `json:"messageId"`
	Error     *string   `json:"error"`
	CreatedAt time.Time `json:"createdAt"`
}

// VAPIDPublicKey handles GET /api/notifications/vapid-public-key.
func (h *NotificationHandler) VAPIDPublicKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.svc.VAPIDPublicKey()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"publicKey": key})
}

// Subscribe handles POST /api/notifications/subscribe. A known endpoint is
// accepted without changes.
func (h *NotificationHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var input notification.SubscribeInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.Subscribe(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]bool{"success": true, "created": created})
}

type unsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

// Unsubscribe handles DELETE /api/notifications/subscribe.
func (h *NotificationHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	removed, err := h.svc.Unsubscribe(r.Context(), req.Endpoint)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true, "removed": removed})
}

// Logs handles GET /api/notifications/logs?channel=&category=&status=&limit=
// The legacy "type" parameter is an alias of channel.
func (h *NotificationHandler) Logs(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.Logs(r.Context(), notification.LogsInput{
		Channel:  firstQuery(r, "channel", "type"),
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
		Limit:    limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]logEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = logEntryResponse{
			ID:        e.ID.String(),
			Channel:   e.Channel.String(),
			Category:  e.Category.String(),
			Recipient: e.Recipient,
			Subject:   e.Subject,
			Status:    e.Status.String(),
			MessageID: e.MessageID,
			Error:     e.Error,
			CreatedAt: e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"logs": out})
}

type testEmailRequest struct {
	Email string `json:"email"`
}

// TestEmail handles POST /api/notifications/test-email. An empty body mails
// the caller.
func (h *NotificationHandler) TestEmail(w http.ResponseWriter, r *http.Request) {
	var req testEmailRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	res, err := h.svc.SendTestEmail(r.Context(), req.Email)
	h.writeTestResult(w, r, res, err)
}

type testSMSRequest struct {
	Phone string `json:"phone"`
}

// TestSMS handles POST /api/notifications/test-sms.
func (h *NotificationHandler) TestSMS(w http.ResponseWriter, r *http.Request) {
	var req testSMSRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.SendTestSMS(r.Context(), req.Phone)
	h.writeTestResult(w, r, res, err)
}

// TestPush handles POST /api/notifications/test-push.
func (h *NotificationHandler) TestPush(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SendTestPush(r.Context())
	h.writeTestResult(w, r, res, err)
}

func (h *NotificationHandler) writeTestResult(w http.ResponseWriter, r *http.Request, res *notification.TestResult, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
