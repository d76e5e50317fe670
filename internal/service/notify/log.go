package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/metrics"
)

const appendTimeout = 5 * time.Second

type logRepo interface {
	Append(ctx context.Context, e domain.NotificationLogEntry) error
}

// Log records send attempts in the notification log.
type Log struct {
	repo logRepo
	now  func() time.Time
	log  *slog.Logger
}

// NewLog creates a Log.
func NewLog(logger *slog.Logger, repo logRepo) *Log {
	return &Log{
		repo: repo,
		now:  time.Now,
		log:  logger.With("service", "notification_log"),
	}
}

// attempt is one send attempt to be recorded.
type attempt struct {
	Channel   domain.Channel
	Recipient string
	Status    domain.DeliveryStatus
	MessageID string
	Note      string
}

// record appends the attempt. The append survives cancellation of ctx so a
// dispatch timeout does not lose entries; a failed append is logged and
// otherwise ignored.
func (l *Log) record(ctx context.Context, msg Message, a attempt) {
	metrics.NotificationSent(string(a.Channel), string(msg.Category), string(a.Status))

	entry := domain.NotificationLogEntry{
		ID:        uuid.New(),
		UserID:    msg.UserID,
		Channel:   a.Channel,
		Category:  msg.Category,
		Recipient: a.Recipient,
		Subject:   strPtr(msg.Title),
		Status:    a.Status,
		MessageID: strPtr(a.MessageID),
		Error:     strPtr(a.Note),
		CreatedAt: l.now().UTC(),
	}

	appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), appendTimeout)
	defer cancel()

	if err := l.repo.Append(appendCtx, entry); err != nil {
		l.log.ErrorContext(ctx, "append notification log",
			slog.String("channel", string(a.Channel)),
			slog.String("status", string(a.Status)),
			slog.String("error", err.Error()),
		)
	}
}
