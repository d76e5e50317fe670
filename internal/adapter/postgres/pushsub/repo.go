// Package pushsub implements push subscription storage using PostgreSQL.
package pushsub

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carealert-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carealert-backend/internal/domain"
)

// Repo provides push subscription persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new push subscription repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type subscriptionRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Endpoint  string    `db:"endpoint"`
	P256dh    string    `db:"p256dh"`
	Auth      string    `db:"auth"`
	CreatedAt time.Time `db:"created_at"`
}

// Create stores a subscription. An endpoint belongs to one browser, so
// registering an endpoint that already exists moves it to s.UserID with the
// new keys and reports created=false.
func (r *Repo) Create(ctx context.Context, s domain.PushSubscription) (bool, error) {
	const query = `INSERT INTO push_subscriptions (id, user_id, endpoint, p256dh, auth, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (endpoint) DO UPDATE
		SET user_id = EXCLUDED.user_id, p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth
		RETURNING (xmax = 0) AS inserted`

	var inserted bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, query, s.ID, s.UserID, s.Endpoint, s.P256dh, s.Auth, s.CreatedAt).
		Scan(&inserted)
	if err != nil {
		return false, postgres.MapError(err, "push_subscription", s.UserID)
	}
	return inserted, nil
}

// ListByUser returns all subscriptions of a user, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PushSubscription, error) {
	const query = `SELECT id, user_id, endpoint, p256dh, auth, created_at
		FROM push_subscriptions
		WHERE user_id = $1
		ORDER BY created_at, id`

	var rows []subscriptionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list push_subscriptions: %w", err)
	}

	out := make([]domain.PushSubscription, len(rows))
	for i, row := range rows {
		out[i] = domain.PushSubscription(row)
	}
	return out, nil
}

// DeleteByEndpoint removes a subscription. When userID is non-nil only a
// subscription owned by that user is removed. Deleting a missing endpoint
// is not an error.
func (r *Repo) DeleteByEndpoint(ctx context.Context, endpoint string, userID *uuid.UUID) (bool, error) {
	q := postgres.Builder().Delete("push_subscriptions").Where("endpoint = ?", endpoint)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build push_subscription delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete push_subscription: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountActive returns the number of stored subscriptions.
func (r *Repo) CountActive(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT count(*) FROM push_subscriptions`).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count push_subscriptions: %w", err)
	}
	return n, nil
}
