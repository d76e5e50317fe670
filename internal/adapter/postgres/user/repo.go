// Package user implements read access to users and caregiver relationships.
// Accounts are managed elsewhere; this subsystem only resolves who to notify.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carealert-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carealert-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Phone        *string   `db:"phone"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	IsPrimary    bool      `db:"is_primary"`
	Relationship *string   `db:"relationship"`
}

const userColumns = `u.id, u.email, u.name, u.phone, u.role::text AS role, u.created_at`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + `, false AS is_primary, NULL::text AS relationship
		FROM users u WHERE u.id = $1`

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, id); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomainUser(row)
	return &u, nil
}

// ListActiveCaregivers returns caregivers with an active relationship to the
// elderly user, primary caregivers first, then by name.
func (r *Repo) ListActiveCaregivers(ctx context.Context, elderlyID uuid.UUID) ([]domain.Caregiver, error) {
	query := `SELECT ` + userColumns + `, cr.is_primary, cr.relationship
		FROM caregiver_relationships cr
		JOIN users u ON u.id = cr.caregiver_id
		WHERE cr.elderly_id = $1 AND cr.status = 'active'
		ORDER BY cr.is_primary DESC, u.name ASC`

	var rows []userRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, elderlyID); err != nil {
		return nil, fmt.Errorf("list caregivers of %s: %w", elderlyID, err)
	}

	return toDomainCaregivers(rows), nil
}

// ListByRole returns every user holding the role, ordered by name.
func (r *Repo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Caregiver, error) {
	query := `SELECT ` + userColumns + `, false AS is_primary, NULL::text AS relationship
		FROM users u
		WHERE u.role = $1::user_role
		ORDER BY u.name ASC`

	var rows []userRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, role.String()); err != nil {
		return nil, fmt.Errorf("list users by role %s: %w", role, err)
	}

	return toDomainCaregivers(rows), nil
}

type roleCountRow struct {
	Role  string `db:"role"`
	Count int    `db:"count"`
}

// CountByRole returns the number of users per role. Roles without users are absent.
func (r *Repo) CountByRole(ctx context.Context) (map[domain.Role]int, error) {
	query := `SELECT role::text AS role, count(*) AS count FROM users GROUP BY role`

	var rows []roleCountRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, fmt.Errorf("count users by role: %w", err)
	}

	counts := make(map[domain.Role]int, len(rows))
	for _, row := range rows {
		counts[domain.Role(row.Role)] = row.Count
	}
	return counts, nil
}

func toDomainUser(row userRow) domain.User {
	return domain.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Phone:     row.Phone,
		Role:      domain.Role(row.Role),
		CreatedAt: row.CreatedAt,
	}
}

func toDomainCaregivers(rows []userRow) []domain.Caregiver {
	out := make([]domain.Caregiver, len(rows))
	for i, row := range rows {
		out[i] = domain.Caregiver{
			User:         toDomainUser(row),
			IsPrimary:    row.IsPrimary,
			Relationship: row.Relationship,
		}
	}
	return out
}
