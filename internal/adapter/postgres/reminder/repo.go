// Package reminder implements reminder lookups and the reminder trigger
// ledger using PostgreSQL.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/carealert-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carealert-backend/internal/domain"
)

const defaultEventsLimit = 50

// Repo provides reminder persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reminder repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type reminderRow struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	Title      string    `db:"title"`
	Notes      *string   `db:"notes"`
	RemindAt   string    `db:"remind_at"`
	RepeatType string    `db:"repeat_type"`
	Enabled    bool      `db:"enabled"`
	CreatedAt  time.Time `db:"created_at"`
}

type eventRow struct {
	ID          uuid.UUID `db:"id"`
	ReminderID  uuid.UUID `db:"reminder_id"`
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	TriggeredAt time.Time `db:"triggered_at"`
	TriggerDate time.Time `db:"trigger_date"`
}

// ListEnabledAt returns enabled reminders scheduled at the given wall-clock
// minute. Seconds stored in remind_at are ignored.
func (r *Repo) ListEnabledAt(ctx context.Context, at domain.TimeOfDay) ([]domain.Reminder, error) {
	const query = `SELECT id, user_id, title, notes, to_char(remind_at, 'HH24:MI') AS remind_at,
			repeat_type::text AS repeat_type, enabled, created_at
		FROM reminders
		WHERE enabled = true AND to_char(remind_at, 'HH24:MI') = $1
		ORDER BY created_at, id`

	var rows []reminderRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, at.String()); err != nil {
		return nil, fmt.Errorf("list reminders at %s: %w", at, err)
	}

	out := make([]domain.Reminder, 0, len(rows))
	for _, row := range rows {
		rem, err := toDomainReminder(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, nil
}

// RecordTrigger inserts a ledger entry for the event's calendar day.
// It returns false without error when the reminder was already triggered
// on that day.
func (r *Repo) RecordTrigger(ctx context.Context, ev domain.ReminderEvent) (bool, error) {
	const query = `INSERT INTO reminder_events (id, reminder_id, user_id, triggered_at, trigger_date)
		VALUES ($1, $2, $3, $4, $5::date)
		ON CONFLICT (reminder_id, trigger_date) DO NOTHING
		RETURNING id`

	var id uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, query, ev.ID, ev.ReminderID, ev.UserID, ev.TriggeredAt, ev.TriggerDate.Format(time.DateOnly)).
		Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, "reminder_event", ev.ReminderID)
	}
	return true, nil
}

// ListEvents returns the trigger history of a user, newest first.
func (r *Repo) ListEvents(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReminderEvent, error) {
	const query = `SELECT e.id, e.reminder_id, e.user_id, r.title, e.triggered_at, e.trigger_date
		FROM reminder_events e
		JOIN reminders r ON r.id = e.reminder_id
		WHERE e.user_id = $1
		ORDER BY e.triggered_at DESC
		LIMIT $2`

	if limit <= 0 {
		limit = defaultEventsLimit
	}

	var rows []eventRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("list reminder events: %w", err)
	}

	out := make([]domain.ReminderEvent, len(rows))
	for i, row := range rows {
		out[i] = domain.ReminderEvent(row)
	}
	return out, nil
}

func toDomainReminder(row reminderRow) (domain.Reminder, error) {
	at, err := domain.ParseTimeOfDay(row.RemindAt)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("reminder %s: %w", row.ID, err)
	}

	return domain.Reminder{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Notes:     row.Notes,
		RemindAt:  at,
		Repeat:    domain.RepeatType(row.RepeatType),
		Enabled:   row.Enabled,
		CreatedAt: row.CreatedAt,
	}, nil
}
