package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/carealert-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carealert-backend/internal/adapter/postgres/contact"
	fallalertrepo "github.com/heartmarshall/carealert-backend/internal/adapter/postgres/fallalert"
	notificationrepo "github.com/heartmarshall/carealert-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/carealert-backend/internal/adapter/postgres/pushsub"
	reminderrepo "github.com/heartmarshall/carealert-backend/internal/adapter/postgres/reminder"
	"github.com/heartmarshall/carealert-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/carealert-backend/internal/auth"
	"github.com/heartmarshall/carealert-backend/internal/config"
	"github.com/heartmarshall/carealert-backend/internal/metrics"
	"github.com/heartmarshall/carealert-backend/internal/scheduler"
	"github.com/heartmarshall/carealert-backend/internal/service/fallalert"
	"github.com/heartmarshall/carealert-backend/internal/service/monitor"
	"github.com/heartmarshall/carealert-backend/internal/service/notification"
	"github.com/heartmarshall/carealert-backend/internal/service/reminder"
	"github.com/heartmarshall/carealert-backend/internal/transport/middleware"
	"github.com/heartmarshall/carealert-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, channel providers and services, then
// serves HTTP and runs the scheduler until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Scheduler.Timezone),
	)

	// 1. Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// 2. Everything else.
	a, err := newApplication(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	defer a.limiter.Stop()

	if a.scheduler != nil {
		a.scheduler.Start(ctx)
		defer a.scheduler.Stop()
	} else {
		logger.Warn("scheduler disabled: reminders and escalations will not fire")
	}

	return serve(ctx, cfg.Server, a.server, logger)
}

// application holds the wired components of one process.
type application struct {
	server    *http.Server
	limiter   *middleware.RateLimiter
	scheduler *scheduler.Scheduler

	fallAlerts *fallalert.Service
	reminders  *reminder.Engine
}

func newApplication(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*application, error) {
	// Repositories.
	repos := newRepositories(pool)

	// Channel senders.
	senders, err := newSenders(ctx, cfg, repos, logger)
	if err != nil {
		return nil, err
	}

	// Services.
	dispatcher := senders.dispatcher(cfg.Notify.DispatchTimeout, logger)

	fallAlertService := fallalert.NewService(
		logger, repos.alerts, repos.users, senders.resolver, dispatcher,
		postgres.NewTxManager(pool),
		fallalert.Options{
			EscalationDelay: cfg.Escalation.Delay(),
			EscalationBatch: cfg.Escalation.BatchSize,
			DashboardURL:    cfg.App.DashboardURL(),
			Location:        cfg.Scheduler.Location,
		},
	)

	reminderEngine := reminder.NewEngine(logger, repos.reminders, dispatcher, cfg.Scheduler.Location)

	notificationService := notification.NewService(
		logger, repos.subscriptions, repos.notifications, repos.users,
		senders.byChannel(), cfg.Push.VAPIDPublicKey,
	)

	monitorService := monitor.NewService(
		logger, pool, repos.alerts, repos.notifications, repos.users, repos.subscriptions,
		BuildVersion(),
	)

	a := &application{
		fallAlerts: fallAlertService,
		reminders:  reminderEngine,
	}

	// Scheduler.
	if cfg.Scheduler.Enabled {
		a.scheduler = scheduler.New(logger, cfg.Scheduler.Interval,
			scheduler.Job{Name: "reminders", Run: func(ctx context.Context, now time.Time) error {
				_, err := reminderEngine.Tick(ctx, now)
				return err
			}},
			scheduler.Job{Name: "escalations", Run: func(ctx context.Context, now time.Time) error {
				_, err := fallAlertService.EscalateDue(ctx, now)
				return err
			}},
		)
	}

	// HTTP.
	a.server, a.limiter = newHTTPServer(cfg, logger, rest.Handlers{
		Health:       rest.NewHealthHandler(pool, monitorService),
		FallAlert:    rest.NewFallAlertHandler(fallAlertService, logger),
		Notification: rest.NewNotificationHandler(notificationService, logger),
		Reminder:     rest.NewReminderHandler(reminderEngine, logger),
		Stats:        rest.NewStatsHandler(monitorService, logger),
		Metrics:      metrics.Handler(),
	})

	return a, nil
}

type repositories struct {
	users         *user.Repo
	contacts      *contact.Repo
	alerts        *fallalertrepo.Repo
	reminders     *reminderrepo.Repo
	notifications *notificationrepo.Repo
	subscriptions *pushsub.Repo
}

func newRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		users:         user.New(pool),
		contacts:      contact.New(pool),
		alerts:        fallalertrepo.New(pool),
		reminders:     reminderrepo.New(pool),
		notifications: notificationrepo.New(pool),
		subscriptions: pushsub.New(pool),
	}
}

func newHTTPServer(cfg *config.Config, logger *slog.Logger, handlers rest.Handlers) (*http.Server, *middleware.RateLimiter) {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	// Users and detection devices get separate per-IP budgets.
	mux := rest.NewRouter(handlers, rest.Guards{
		User: middleware.Chain(
			limiter.Limit(cfg.RateLimit.PerMinute),
			middleware.Auth(jwtManager),
			middleware.RequireUser,
		),
		Device: middleware.Chain(
			limiter.Limit(cfg.RateLimit.IngestPerMinute),
			middleware.APIKey(cfg.Ingest.APIKey),
		),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Metrics,
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return srv, limiter
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, cfg config.ServerConfig, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
