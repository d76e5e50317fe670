// Package fallalert implements the fall alert pipeline: ingestion from the
// detection camera, caregiver notification, acknowledgement and the SMS
// escalation of alerts nobody acknowledged in time.
package fallalert

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/service/notify"
)

const (
	DefaultLimit           = 50
	MaxLimit               = 200
	defaultEscalationDelay = 10 * time.Minute
	defaultEscalationBatch = 50
)

type alertRepo interface {
	Create(ctx context.Context, a *domain.FallAlert) (*domain.FallAlert, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FallAlert, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.FallAlert, error)
	MarkAcknowledged(ctx context.Context, id, by uuid.UUID, at time.Time) error
	List(ctx context.Context, f domain.FallAlertFilter) ([]domain.FallAlert, error)
	ClaimDueEscalations(ctx context.Context, now time.Time, limit int) ([]domain.FallAlert, error)
	ReleaseEscalation(ctx context.Context, id uuid.UUID, claimedAt time.Time) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type recipientResolver interface {
	Resolve(ctx context.Context, elderlyID uuid.UUID) domain.Recipients
	Lookup(ctx context.Context, elderlyID uuid.UUID) (domain.Recipients, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, deliveries []notify.Delivery) notify.Result
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tunes the pipeline.
type Options struct {
	// EscalationDelay is how long an alert may stay unacknowledged before
	// the SMS wave.
	EscalationDelay time.Duration
	// EscalationBatch caps the alerts claimed per sweep query.
	EscalationBatch int
	// DashboardURL is the absolute link put into emails and SMS.
	DashboardURL string
	// Location is used to render times in messages and to read timestamps
	// without a zone.
	Location *time.Location
}

// Service provides fall alert operations.
type Service struct {
	alerts     alertRepo
	users      userRepo
	resolver   recipientResolver
	dispatcher dispatcher
	tx         txManager
	opts       Options
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new fall alert service.
func NewService(
	log *slog.Logger,
	alerts alertRepo,
	users userRepo,
	resolver recipientResolver,
	dispatcher dispatcher,
	tx txManager,
	opts Options,
) *Service {
	if opts.EscalationDelay <= 0 {
		opts.EscalationDelay = defaultEscalationDelay
	}
	if opts.EscalationBatch <= 0 {
		opts.EscalationBatch = defaultEscalationBatch
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Service{
		alerts:     alerts,
		users:      users,
		resolver:   resolver,
		dispatcher: dispatcher,
		tx:         tx,
		opts:       opts,
		now:        time.Now,
		log:        log.With("service", "fallalert"),
	}
}
