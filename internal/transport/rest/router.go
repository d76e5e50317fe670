package rest

import (
	"net/http"

	"github.com/heartmarshall/carealert-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health       *HealthHandler
	FallAlert    *FallAlertHandler
	Notification *NotificationHandler
	Reminder     *ReminderHandler
	Stats        *StatsHandler
	Metrics      http.Handler
}

// Guards are the per-route-group middleware.
type Guards struct {
	// User resolves the bearer token and rejects anonymous callers.
	User middleware.Middleware
	// Device authenticates the fall detection camera.
	Device middleware.Middleware
}

// NewRouter mounts all routes. The legacy /api/notify/... paths of the
// first client release are kept as aliases.
func NewRouter(h Handlers, g Guards) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	ingest := g.Device(http.HandlerFunc(h.FallAlert.Ingest))
	mux.Handle("POST /api/fall-alerts", ingest)
	mux.Handle("POST /api/notify/fall-alert", ingest)

	user := func(fn http.HandlerFunc) http.Handler { return g.User(fn) }

	mux.Handle("GET /api/fall-alerts", user(h.FallAlert.List))
	mux.Handle("GET /api/notify/fall-alerts", user(h.FallAlert.List))
	mux.Handle("GET /api/fall-alerts/{id}", user(h.FallAlert.Get))
	mux.Handle("POST /api/fall-alerts/{id}/acknowledge", user(h.FallAlert.Acknowledge))
	mux.Handle("PUT /api/notify/fall-alerts/{id}/acknowledge", user(h.FallAlert.Acknowledge))

	mux.HandleFunc("GET /api/notifications/vapid-public-key", h.Notification.VAPIDPublicKey)
	mux.Handle("POST /api/notifications/subscribe", user(h.Notification.Subscribe))
	mux.Handle("DELETE /api/notifications/subscribe", user(h.Notification.Unsubscribe))
	mux.Handle("POST /api/notifications/unsubscribe", user(h.Notification.Unsubscribe))
	mux.Handle("GET /api/notifications/logs", user(h.Notification.Logs))
	mux.Handle("POST /api/notifications/test-email", user(h.Notification.TestEmail))
	mux.Handle("POST /api/notifications/test-sms", user(h.Notification.TestSMS))
	mux.Handle("POST /api/notifications/test-push", user(h.Notification.TestPush))

	mux.Handle("GET /api/reminders/events", user(h.Reminder.Events))
	mux.Handle("GET /api/stats", user(h.Stats.Stats))

	return mux
}
