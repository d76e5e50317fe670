package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
)

type userRepo interface {
	ListActiveCaregivers(ctx context.Context, elderlyID uuid.UUID) ([]domain.Caregiver, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.Caregiver, error)
}

type contactRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.EmergencyContact, error)
}

// Resolver computes who to notify about an elderly user.
type Resolver struct {
	users    userRepo
	contacts contactRepo
	log      *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(logger *slog.Logger, users userRepo, contacts contactRepo) *Resolver {
	return &Resolver{
		users:    users,
		contacts: contacts,
		log:      logger.With("service", "recipient_resolver"),
	}
}

// Resolve returns caregivers (primary first, then by name) and emergency
// contacts (by ascending priority). When no caregiver is assigned every
// caregiver-role user is notified instead. Lookup failures are logged and
// yield empty lists; Resolve never fails.
func (r *Resolver) Resolve(ctx context.Context, elderlyID uuid.UUID) domain.Recipients {
	out, err := r.Lookup(ctx, elderlyID)
	if err != nil {
		r.log.ErrorContext(ctx, "resolve recipients",
			slog.String("user_id", elderlyID.String()),
			slog.String("error", err.Error()),
		)
	}
	return out
}

// Lookup is Resolve for callers that must not act on a partial list. The
// recipients that could be loaded are returned together with every lookup
// failure joined into one error.
func (r *Resolver) Lookup(ctx context.Context, elderlyID uuid.UUID) (domain.Recipients, error) {
	var (
		out  domain.Recipients
		errs []error
	)

	caregivers, err := r.users.ListActiveCaregivers(ctx, elderlyID)
	if err != nil {
		errs = append(errs, fmt.Errorf("list assigned caregivers: %w", err))
		caregivers = nil
	}

	if len(caregivers) == 0 {
		all, err := r.users.ListByRole(ctx, domain.RoleCaregiver)
		if err != nil {
			errs = append(errs, fmt.Errorf("list caregivers: %w", err))
		}
		caregivers = all
		out.FellBack = true
		r.log.WarnContext(ctx, "no assigned caregivers, falling back to all caregivers",
			slog.String("user_id", elderlyID.String()),
			slog.Int("caregivers", len(all)),
		)
	}

	for _, c := range caregivers {
		if c.ID == elderlyID {
			continue
		}
		id := c.ID
		email := c.Email
		out.Caregivers = append(out.Caregivers, domain.Recipient{
			Role:      domain.RecipientCaregiver,
			UserID:    &id,
			Name:      c.Name,
			Email:     strPtr(email),
			Phone:     c.Phone,
			IsPrimary: c.IsPrimary,
		})
	}

	contacts, err := r.contacts.ListByUser(ctx, elderlyID)
	if err != nil {
		errs = append(errs, fmt.Errorf("list emergency contacts: %w", err))
	}
	for _, c := range contacts {
		out.EmergencyContacts = append(out.EmergencyContacts, domain.Recipient{
			Role:     domain.RecipientEmergencyContact,
			Name:     c.Name,
			Email:    c.Email,
			Phone:    c.Phone,
			Priority: c.Priority,
		})
	}

	return out, errors.Join(errs...)
}
