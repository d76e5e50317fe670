// Package reminder fires due reminders as push notifications and exposes
// their trigger history.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/service/notify"
	"github.com/heartmarshall/carealert-backend/pkg/ctxutil"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200

	// maxCatchUp bounds how far back a tick evaluates minutes missed since
	// the previous tick. Reminders older than that are not sent late.
	maxCatchUp = time.Hour
)

type reminderRepo interface {
	ListEnabledAt(ctx context.Context, at domain.TimeOfDay) ([]domain.Reminder, error)
	RecordTrigger(ctx context.Context, ev domain.ReminderEvent) (bool, error)
	ListEvents(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReminderEvent, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, deliveries []notify.Delivery) notify.Result
}

// TickResult summarizes one evaluation of the reminder table.
type TickResult struct {
	// Minutes is the number of wall-clock minutes evaluated.
	Minutes int
	// Matched reminders were enabled and due at this minute.
	Matched int
	// Triggered reminders got a new ledger entry and were dispatched.
	Triggered int
	// Skipped reminders did not match their recurrence or already fired today.
	Skipped int
	// Failed counts ledger errors and failed pushes.
	Failed int
}

// Engine evaluates reminders once per tick.
type Engine struct {
	reminders  reminderRepo
	dispatcher dispatcher
	loc        *time.Location
	log        *slog.Logger

	mu sync.Mutex
	// last is the latest minute fully evaluated, zero before the first tick.
	last time.Time
}

// NewEngine creates an Engine. Reminder times are wall-clock times in loc.
func NewEngine(log *slog.Logger, reminders reminderRepo, dispatcher dispatcher, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{
		reminders:  reminders,
		dispatcher: dispatcher,
		loc:        loc,
		log:        log.With("service", "reminder"),
	}
}

// Tick fires every reminder due at the minute of now, and at every minute
// skipped since the previous tick (up to maxCatchUp), so a late or drifting
// tick does not lose reminders. The trigger is written to the ledger before
// the push goes out, so a reminder fires at most once per calendar day
// however often a minute is evaluated. One failing reminder does not affect
// the others.
func (e *Engine) Tick(ctx context.Context, now time.Time) (TickResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var (
		res        TickResult
		deliveries []notify.Delivery
		err        error
	)

	local := now.In(e.loc).Truncate(time.Minute)
	from := local
	if !e.last.IsZero() && e.last.Before(local) {
		from = e.last.Add(time.Minute)
		if oldest := local.Add(-maxCatchUp + time.Minute); from.Before(oldest) {
			e.log.WarnContext(ctx, "reminder catch-up window exceeded",
				slog.Time("last", e.last),
				slog.Time("now", local),
			)
			from = oldest
		}
	}

	for m := from; !m.After(local); m = m.Add(time.Minute) {
		deliveries, err = e.evaluate(ctx, m, now, deliveries, &res)
		if err != nil {
			// Retry this minute on the next tick.
			e.advance(m.Add(-time.Minute))
			break
		}
		res.Minutes++
		e.advance(m)
	}

	if len(deliveries) > 0 {
		sent := e.dispatcher.Dispatch(ctx, deliveries)
		res.Failed += sent.Push.Failed
	}

	e.log.InfoContext(ctx, "reminder tick",
		slog.String("at", domain.TimeOfDayOf(local).String()),
		slog.Int("minutes", res.Minutes),
		slog.Int("matched", res.Matched),
		slog.Int("triggered", res.Triggered),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
	)
	return res, err
}

// advance moves the evaluated mark forward only; a clock stepping back
// re-evaluates minutes, which the ledger makes harmless.
func (e *Engine) advance(m time.Time) {
	if m.After(e.last) {
		e.last = m
	}
}

// evaluate records triggers for reminders due at local minute m and appends
// their pushes to deliveries.
func (e *Engine) evaluate(ctx context.Context, m, now time.Time, deliveries []notify.Delivery, res *TickResult) ([]notify.Delivery, error) {
	due, err := e.reminders.ListEnabledAt(ctx, domain.TimeOfDayOf(m))
	if err != nil {
		return deliveries, fmt.Errorf("list due reminders at %s: %w", domain.TimeOfDayOf(m), err)
	}
	res.Matched += len(due)

	triggerDate := time.Date(m.Year(), m.Month(), m.Day(), 0, 0, 0, 0, time.UTC)

	for i := range due {
		r := &due[i]

		if !r.MatchesRecurrence(m) {
			res.Skipped++
			continue
		}

		inserted, err := e.reminders.RecordTrigger(ctx, domain.ReminderEvent{
			ID:          uuid.New(),
			ReminderID:  r.ID,
			UserID:      r.UserID,
			TriggeredAt: now.UTC(),
			TriggerDate: triggerDate,
		})
		if err != nil {
			res.Failed++
			e.log.ErrorContext(ctx, "record reminder trigger",
				slog.String("reminder_id", r.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !inserted {
			res.Skipped++
			continue
		}

		res.Triggered++
		deliveries = append(deliveries, notify.Delivery{
			Channel:   domain.ChannelPush,
			Recipient: domain.Recipient{Role: domain.RecipientSelf, UserID: &r.UserID},
			Message:   pushMessage(r),
		})
	}
	return deliveries, nil
}

func pushMessage(r *domain.Reminder) notify.Message {
	body := "Time for your reminder!"
	if r.Notes != nil && *r.Notes != "" {
		body = *r.Notes
	}
	return notify.Message{
		Category: domain.CategoryReminder,
		UserID:   &r.UserID,
		Title:    "Reminder: " + r.Title,
		Body:     body,
		Tag:      "reminder-" + r.ID.String(),
		URL:      "/reminders",
		Data:     map[string]string{"reminderId": r.ID.String()},
	}
}

// ListEvents returns the caller's reminder trigger history, newest first.
func (e *Engine) ListEvents(ctx context.Context, limit int) ([]domain.ReminderEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit < 0 || limit > MaxLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", MaxLimit))
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	events, err := e.reminders.ListEvents(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list reminder events: %w", err)
	}
	return events, nil
}
