// Package metrics defines the prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	notificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Notification send attempts by channel, category and status",
		},
		[]string{"channel", "category", "status"},
	)

	schedulerTickDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scheduler_tick_duration_seconds",
			Help:    "Duration of scheduler jobs",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"job"},
	)

	schedulerJobFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduler_job_failures_total",
			Help: "Scheduler jobs that returned an error or panicked",
		},
		[]string{"job"},
	)

	escalationsFired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fall_alert_escalations_total",
			Help: "Fall alerts escalated by SMS after the acknowledgment window",
		},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)
)

// NotificationSent records one send attempt.
func NotificationSent(channel, category, status string) {
	notificationsSent.WithLabelValues(channel, category, status).Inc()
}

// ObserveTick records the duration of one scheduler job run.
func ObserveTick(job string, d time.Duration) {
	schedulerTickDuration.WithLabelValues(job).Observe(d.Seconds())
}

// JobFailed records a failed scheduler job run.
func JobFailed(job string) {
	schedulerJobFailures.WithLabelValues(job).Inc()
}

// EscalationFired records one escalated fall alert.
func EscalationFired() {
	escalationsFired.Inc()
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
