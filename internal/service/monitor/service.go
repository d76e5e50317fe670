// Package monitor reports system health and usage statistics.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/pkg/ctxutil"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
	StatusDown     = "unhealthy"

	pingTimeout = 3 * time.Second
)

type pinger interface {
	Ping(ctx context.Context) error
}

type alertStats interface {
	Stats(ctx context.Context, since time.Time) (domain.FallAlertStats, error)
}

type notificationStats interface {
	CountSince(ctx context.Context, since time.Time) (domain.NotificationCounts, error)
	CountByChannelSince(ctx context.Context, since time.Time) ([]domain.ChannelCounts, error)
}

type userStats interface {
	CountByRole(ctx context.Context) (map[domain.Role]int, error)
}

type subscriptionStats interface {
	CountActive(ctx context.Context) (int, error)
}

// Service aggregates health and statistics from the stores.
type Service struct {
	db            pinger
	alerts        alertStats
	notifications notificationStats
	users         userStats
	subs          subscriptionStats
	version       string
	started       time.Time
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a monitor service.
func NewService(
	log *slog.Logger,
	db pinger,
	alerts alertStats,
	notifications notificationStats,
	users userStats,
	subs subscriptionStats,
	version string,
) *Service {
	return &Service{
		db:            db,
		alerts:        alerts,
		notifications: notifications,
		users:         users,
		subs:          subs,
		version:       version,
		started:       time.Now(),
		now:           time.Now,
		log:           log.With("service", "monitor"),
	}
}

// Health is the detailed health report.
type Health struct {
	Status        string                     `json:"status"`
	Version       string                     `json:"version,omitempty"`
	Uptime        string                     `json:"uptime"`
	Timestamp     time.Time                  `json:"timestamp"`
	Database      ComponentStatus            `json:"database"`
	FallAlerts    *AlertHealth               `json:"fallAlerts,omitempty"`
	Notifications *domain.NotificationCounts `json:"notificationsLastHour,omitempty"`
}

// ComponentStatus is the state of one dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// AlertHealth counts alerts detected in the last 24 hours.
type AlertHealth struct {
	Last24h        int `json:"last24h"`
	Unacknowledged int `json:"unacknowledged"`
}

// Healthy reports whether the database is reachable.
func (h Health) Healthy() bool { return h.Status != StatusDown }

// Health pings the database and samples recent activity. A failed sample
// degrades the report; an unreachable database makes it unhealthy.
func (s *Service) Health(ctx context.Context) Health {
	now := s.now()
	h := Health{
		Status:    StatusHealthy,
		Version:   s.version,
		Uptime:    now.Sub(s.started).Round(time.Second).String(),
		Timestamp: now.UTC(),
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	start := time.Now()
	err := s.db.Ping(pingCtx)
	cancel()
	if err != nil {
		s.log.ErrorContext(ctx, "database ping failed", slog.String("error", err.Error()))
		h.Status = StatusDown
		h.Database = ComponentStatus{Status: "down"}
		return h
	}
	h.Database = ComponentStatus{Status: "up", Latency: time.Since(start).String()}

	var g errgroup.Group
	g.Go(func() error {
		st, err := s.alerts.Stats(ctx, now.Add(-24*time.Hour))
		if err != nil {
			return fmt.Errorf("fall alert stats: %w", err)
		}
		h.FallAlerts = &AlertHealth{Last24h: st.Last24h, Unacknowledged: st.Unacknowledged}
		return nil
	})
	g.Go(func() error {
		c, err := s.notifications.CountSince(ctx, now.Add(-time.Hour))
		if err != nil {
			return fmt.Errorf("notification counts: %w", err)
		}
		h.Notifications = &c
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.WarnContext(ctx, "health sample failed", slog.String("error", err.Error()))
		h.Status = StatusDegraded
	}

	return h
}

// Stats is the usage report for caregivers and admins.
type Stats struct {
	Users             UserStats              `json:"users"`
	FallAlerts        domain.FallAlertStats  `json:"fallAlerts"`
	Notifications     []domain.ChannelCounts `json:"notifications"`
	PushSubscriptions int                    `json:"pushSubscriptions"`
	GeneratedAt       time.Time              `json:"generatedAt"`
}

// UserStats counts users by role.
type UserStats struct {
	Total      int `json:"total"`
	Elderly    int `json:"elderly"`
	Caregivers int `json:"caregivers"`
	Admins     int `json:"admins"`
}

// Stats loads the usage report. Only caregivers and admins may see it.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !domain.Role(ctxutil.UserRoleFromCtx(ctx)).CanMonitor() {
		return nil, domain.ErrForbidden
	}

	now := s.now()
	out := &Stats{GeneratedAt: now.UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		byRole, err := s.users.CountByRole(gctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		out.Users = UserStats{
			Elderly:    byRole[domain.RoleElderly],
			Caregivers: byRole[domain.RoleCaregiver],
			Admins:     byRole[domain.RoleAdmin],
		}
		for _, n := range byRole {
			out.Users.Total += n
		}
		return nil
	})
	g.Go(func() error {
		st, err := s.alerts.Stats(gctx, now.Add(-24*time.Hour))
		if err != nil {
			return fmt.Errorf("fall alert stats: %w", err)
		}
		out.FallAlerts = st
		return nil
	})
	g.Go(func() error {
		counts, err := s.notifications.CountByChannelSince(gctx, now.Add(-24*time.Hour))
		if err != nil {
			return fmt.Errorf("notification stats: %w", err)
		}
		out.Notifications = counts
		return nil
	})
	g.Go(func() error {
		n, err := s.subs.CountActive(gctx)
		if err != nil {
			return fmt.Errorf("count push subscriptions: %w", err)
		}
		out.PushSubscriptions = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
