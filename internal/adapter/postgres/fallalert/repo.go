// Package fallalert implements the FallAlert repository using PostgreSQL.
// The escalate_after and escalated_at columns make the escalation timer
// durable: due alerts are claimed by a poller instead of an in-memory timer.
package fallalert

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carealert-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carealert-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Repo provides fall alert persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new fall alert repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type alertRow struct {
	ID                 uuid.UUID  `db:"id"`
	UserID             uuid.UUID  `db:"user_id"`
	UserName           string     `db:"user_name"`
	DetectedAt         time.Time  `db:"detected_at"`
	Confidence         *float64   `db:"confidence"`
	ImageURL           *string    `db:"image_url"`
	FallType           *string    `db:"fall_type"`
	Acknowledged       bool       `db:"acknowledged"`
	AcknowledgedBy     *uuid.UUID `db:"acknowledged_by"`
	AcknowledgedByName *string    `db:"acknowledged_by_name"`
	AcknowledgedAt     *time.Time `db:"acknowledged_at"`
	EscalateAfter      time.Time  `db:"escalate_after"`
	EscalatedAt        *time.Time `db:"escalated_at"`
	CreatedAt          time.Time  `db:"created_at"`
}

var alertColumns = []string{
	"fa.id", "fa.user_id", "u.name AS user_name", "fa.detected_at", "fa.confidence",
	"fa.image_url", "fa.fall_type", "fa.acknowledged", "fa.acknowledged_by",
	"ab.name AS acknowledged_by_name", "fa.acknowledged_at", "fa.escalate_after",
	"fa.escalated_at", "fa.created_at",
}

func selectAlerts() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(alertColumns...).
		From("fall_alerts fa").
		Join("users u ON u.id = fa.user_id").
		LeftJoin("users ab ON ab.id = fa.acknowledged_by")
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new unacknowledged fall alert. UserName is not filled.
func (r *Repo) Create(ctx context.Context, a *domain.FallAlert) (*domain.FallAlert, error) {
	const query = `INSERT INTO fall_alerts
		(id, user_id, detected_at, confidence, image_url, fall_type, acknowledged, escalate_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, false, $7, $8)
		RETURNING id, user_id, '' AS user_name, detected_at, confidence, image_url, fall_type,
			acknowledged, acknowledged_by, NULL::text AS acknowledged_by_name, acknowledged_at,
			escalate_after, escalated_at, created_at`

	var row alertRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query,
		a.ID, a.UserID, a.DetectedAt, a.Confidence, a.ImageURL, a.FallType, a.EscalateAfter, a.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "fall_alert", a.ID)
	}

	alert := toDomain(row)
	return &alert, nil
}

// MarkAcknowledged records the acknowledgment of an unacknowledged alert.
// Returns domain.ErrConflict if the alert is already acknowledged and
// domain.ErrNotFound if it does not exist.
func (r *Repo) MarkAcknowledged(ctx context.Context, id, by uuid.UUID, at time.Time) error {
	const query = `UPDATE fall_alerts
		SET acknowledged = true, acknowledged_by = $2, acknowledged_at = $3
		WHERE id = $1 AND acknowledged = false`

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, id, by, at)
	if err != nil {
		return postgres.MapError(err, "fall_alert", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fall_alert %s: already acknowledged: %w", id, domain.ErrConflict)
	}
	return nil
}

// ClaimDueEscalations atomically marks up to limit alerts as escalated and
// returns them. Only alerts that are still unacknowledged, not yet escalated
// and whose escalate_after has passed are claimed. Rows locked by a
// concurrent acknowledgment are skipped and picked up by a later sweep if
// they are still unacknowledged.
func (r *Repo) ClaimDueEscalations(ctx context.Context, now time.Time, limit int) ([]domain.FallAlert, error) {
	const query = `WITH due AS (
			SELECT id FROM fall_alerts
			WHERE acknowledged = false AND escalated_at IS NULL AND escalate_after <= $1
			ORDER BY escalate_after
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		UPDATE fall_alerts fa SET escalated_at = $1
		FROM due, users u
		WHERE fa.id = due.id AND u.id = fa.user_id
		RETURNING fa.id, fa.user_id, u.name AS user_name, fa.detected_at, fa.confidence,
			fa.image_url, fa.fall_type, fa.acknowledged, fa.acknowledged_by,
			NULL::text AS acknowledged_by_name, fa.acknowledged_at, fa.escalate_after,
			fa.escalated_at, fa.created_at`

	var rows []alertRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, now, limit); err != nil {
		return nil, fmt.Errorf("claim due escalations: %w", err)
	}

	return toDomainList(rows), nil
}

// ReleaseEscalation undoes a claim made at claimedAt so the alert is due
// again. An alert acknowledged or re-claimed in the meantime is left alone.
func (r *Repo) ReleaseEscalation(ctx context.Context, id uuid.UUID, claimedAt time.Time) error {
	const query = `UPDATE fall_alerts SET escalated_at = NULL
		WHERE id = $1 AND escalated_at = $2 AND acknowledged = false`

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, id, claimedAt); err != nil {
		return postgres.MapError(err, "fall_alert", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a fall alert with user and acknowledger names.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FallAlert, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate is GetByID that also locks the alert row until the
// surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.FallAlert, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.FallAlert, error) {
	q := selectAlerts().Where("fa.id = ?", id)
	if forUpdate {
		q = q.Suffix("FOR UPDATE OF fa")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fall_alert query: %w", err)
	}

	var row alertRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "fall_alert", id)
	}

	alert := toDomain(row)
	return &alert, nil
}

// List returns alerts matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.FallAlertFilter) ([]domain.FallAlert, error) {
	q := selectAlerts().OrderBy("fa.detected_at DESC").Limit(uint64(clampLimit(f.Limit)))

	if f.UserID != nil {
		q = q.Where("fa.user_id = ?", *f.UserID)
	}
	if f.Acknowledged != nil {
		q = q.Where("fa.acknowledged = ?", *f.Acknowledged)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fall_alert list query: %w", err)
	}

	var rows []alertRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fall_alerts: %w", err)
	}

	return toDomainList(rows), nil
}

type statsRow struct {
	Total                int      `db:"total"`
	Acknowledged         int      `db:"acknowledged"`
	Pending              int      `db:"pending"`
	AvgConfidence        *float64 `db:"avg_confidence"`
	Recent               int      `db:"recent"`
	RecentUnacknowledged int      `db:"recent_unacknowledged"`
}

// Stats aggregates all alerts, plus the ones detected at or after since.
func (r *Repo) Stats(ctx context.Context, since time.Time) (domain.FallAlertStats, error) {
	const query = `SELECT
			count(*) AS total,
			count(*) FILTER (WHERE acknowledged) AS acknowledged,
			count(*) FILTER (WHERE NOT acknowledged) AS pending,
			avg(confidence) AS avg_confidence,
			count(*) FILTER (WHERE detected_at >= $1) AS recent,
			count(*) FILTER (WHERE detected_at >= $1 AND NOT acknowledged) AS recent_unacknowledged
		FROM fall_alerts`

	var row statsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, since); err != nil {
		return domain.FallAlertStats{}, fmt.Errorf("fall_alert stats: %w", err)
	}

	return domain.FallAlertStats{
		Total:          row.Total,
		Acknowledged:   row.Acknowledged,
		Pending:        row.Pending,
		AvgConfidence:  row.AvgConfidence,
		Last24h:        row.Recent,
		Unacknowledged: row.RecentUnacknowledged,
	}, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	}
	return limit
}

func toDomain(row alertRow) domain.FallAlert {
	return domain.FallAlert{
		ID:                 row.ID,
		UserID:             row.UserID,
		UserName:           row.UserName,
		DetectedAt:         row.DetectedAt,
		Confidence:         row.Confidence,
		ImageURL:           row.ImageURL,
		FallType:           row.FallType,
		Acknowledged:       row.Acknowledged,
		AcknowledgedBy:     row.AcknowledgedBy,
		AcknowledgedByName: row.AcknowledgedByName,
		AcknowledgedAt:     row.AcknowledgedAt,
		EscalateAfter:      row.EscalateAfter,
		EscalatedAt:        row.EscalatedAt,
		CreatedAt:          row.CreatedAt,
	}
}

func toDomainList(rows []alertRow) []domain.FallAlert {
	out := make([]domain.FallAlert, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out
}
