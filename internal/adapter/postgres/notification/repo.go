// Package notification implements the append-only notification log using
// PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carealert-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carealert-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Repo provides notification log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type logRow struct {
	ID           uuid.UUID  `db:"id"`
	UserID       *uuid.UUID `db:"user_id"`
	Channel      string     `db:"channel"`
	Category     string     `db:"category"`
	Recipient    string     `db:"recipient"`
	Subject      *string    `db:"subject"`
	Status       string     `db:"status"`
	MessageID    *string    `db:"message_id"`
	ErrorMessage *string    `db:"error_message"`
	CreatedAt    time.Time  `db:"created_at"`
}

var logColumns = []string{
	"id", "user_id", "channel", "category", "recipient", "subject",
	"status", "message_id", "error_message", "created_at",
}

// Append inserts one log entry. Entries are never updated.
func (r *Repo) Append(ctx context.Context, e domain.NotificationLogEntry) error {
	query, args, err := postgres.Builder().
		Insert("notification_logs").
		Columns(logColumns...).
		Values(e.ID, e.UserID, string(e.Channel), string(e.Category), e.Recipient, e.Subject,
			string(e.Status), e.MessageID, e.Error, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build notification_log insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "notification_log", e.ID)
	}
	return nil
}

// List returns log entries matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.NotificationLogFilter) ([]domain.NotificationLogEntry, error) {
	q := postgres.Builder().
		Select(logColumns...).
		From("notification_logs").
		OrderBy("created_at DESC").
		Limit(uint64(clampLimit(f.Limit)))

	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Channel != nil {
		q = q.Where("channel = ?", string(*f.Channel))
	}
	if f.Category != nil {
		q = q.Where("category = ?", string(*f.Category))
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notification_log query: %w", err)
	}

	var rows []logRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list notification_logs: %w", err)
	}

	out := make([]domain.NotificationLogEntry, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out, nil
}

type countsRow struct {
	Total  int `db:"total"`
	Failed int `db:"failed"`
}

// CountSince counts entries created at or after since.
func (r *Repo) CountSince(ctx context.Context, since time.Time) (domain.NotificationCounts, error) {
	const query = `SELECT count(*) AS total, count(*) FILTER (WHERE status = 'failed') AS failed
		FROM notification_logs
		WHERE created_at >= $1`

	var row countsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, since); err != nil {
		return domain.NotificationCounts{}, fmt.Errorf("count notification_logs: %w", err)
	}
	return domain.NotificationCounts(row), nil
}

type channelRow struct {
	Channel string `db:"channel"`
	Total   int    `db:"total"`
	Sent    int    `db:"sent"`
	Failed  int    `db:"failed"`
	Skipped int    `db:"skipped"`
}

// CountByChannelSince aggregates entries per channel created at or after
// since. Channels without entries are reported with zero counts.
func (r *Repo) CountByChannelSince(ctx context.Context, since time.Time) ([]domain.ChannelCounts, error) {
	const query = `SELECT channel,
			count(*) AS total,
			count(*) FILTER (WHERE status = 'sent') AS sent,
			count(*) FILTER (WHERE status = 'failed') AS failed,
			count(*) FILTER (WHERE status = 'skipped') AS skipped
		FROM notification_logs
		WHERE created_at >= $1
		GROUP BY channel`

	var rows []channelRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, since); err != nil {
		return nil, fmt.Errorf("count notification_logs by channel: %w", err)
	}

	byChannel := make(map[domain.Channel]channelRow, len(rows))
	for _, row := range rows {
		byChannel[domain.Channel(row.Channel)] = row
	}

	out := make([]domain.ChannelCounts, 0, len(domain.AllChannels))
	for _, ch := range domain.AllChannels {
		row := byChannel[ch]
		out = append(out, domain.ChannelCounts{
			Channel: ch,
			Total:   row.Total,
			Sent:    row.Sent,
			Failed:  row.Failed,
			Skipped: row.Skipped,
		})
	}
	return out, nil
}

// DeleteOlderThan removes entries created before cutoff and returns the
// number of deleted rows.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).
		Exec(ctx, `DELETE FROM notification_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old notification_logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	}
	return limit
}

func toDomain(row logRow) domain.NotificationLogEntry {
	return domain.NotificationLogEntry{
		ID:        row.ID,
		UserID:    row.UserID,
		Channel:   domain.Channel(row.Channel),
		Category:  domain.Category(row.Category),
		Recipient: row.Recipient,
		Subject:   row.Subject,
		Status:    domain.DeliveryStatus(row.Status),
		MessageID: row.MessageID,
		Error:     row.ErrorMessage,
		CreatedAt: row.CreatedAt,
	}
}
