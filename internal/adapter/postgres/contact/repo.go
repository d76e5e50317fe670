// Package contact implements read access to emergency contacts.
package contact

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carealert-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carealert-backend/internal/domain"
)

// Repo provides emergency contact persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new emergency contact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type contactRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Name         string    `db:"name"`
	Phone        *string   `db:"phone"`
	Email        *string   `db:"email"`
	Relationship *string   `db:"relationship"`
	Priority     int       `db:"priority"`
}

// ListByUser returns the user's emergency contacts, lowest priority number first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.EmergencyContact, error) {
	const query = `SELECT id, user_id, name, phone, email, relationship, priority
		FROM emergency_contacts
		WHERE user_id = $1
		ORDER BY priority ASC, name ASC`

	var rows []contactRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list emergency contacts of %s: %w", userID, err)
	}

	contacts := make([]domain.EmergencyContact, len(rows))
	for i, row := range rows {
		contacts[i] = domain.EmergencyContact{
			ID:           row.ID,
			UserID:       row.UserID,
			Name:         row.Name,
			Phone:        row.Phone,
			Email:        row.Email,
			Relationship: row.Relationship,
			Priority:     row.Priority,
		}
	}
	return contacts, nil
}
