// Package notification serves the user-facing side of notifications: push
// subscription registration, the notification log and test sends.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/service/notify"
	"github.com/heartmarshall/carealert-backend/pkg/ctxutil"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type subscriptionRepo interface {
	Create(ctx context.Context, s domain.PushSubscription) (bool, error)
	DeleteByEndpoint(ctx context.Context, endpoint string, userID *uuid.UUID) (bool, error)
}

type logRepo interface {
	List(ctx context.Context, f domain.NotificationLogFilter) ([]domain.NotificationLogEntry, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service provides subscription, log and test-send operations for the
// calling user.
type Service struct {
	subs           subscriptionRepo
	logs           logRepo
	users          userRepo
	senders        map[domain.Channel]notify.Sender
	vapidPublicKey string
	now            func() time.Time
	log            *slog.Logger
}

// NewService creates a notification service. senders holds the channel
// senders used for test sends.
func NewService(
	log *slog.Logger,
	subs subscriptionRepo,
	logs logRepo,
	users userRepo,
	senders map[domain.Channel]notify.Sender,
	vapidPublicKey string,
) *Service {
	return &Service{
		subs:           subs,
		logs:           logs,
		users:          users,
		senders:        senders,
		vapidPublicKey: vapidPublicKey,
		now:            time.Now,
		log:            log.With("service", "notification"),
	}
}

// VAPIDPublicKey returns the application server key browsers subscribe with.
func (s *Service) VAPIDPublicKey() (string, error) {
	if s.vapidPublicKey == "" {
		return "", domain.ErrNotFound
	}
	return s.vapidPublicKey, nil
}

func callerID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
