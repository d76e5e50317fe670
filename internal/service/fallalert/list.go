package fallalert

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/pkg/ctxutil"
)

// List returns fall alerts newest first. Caregivers and admins see every
// user's alerts and may filter by user; everyone else sees only their own.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.FallAlert, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	filter := domain.FallAlertFilter{
		Acknowledged: input.Acknowledged,
		UserID:       input.UserID,
		Limit:        limit,
	}
	if !callerRole(ctx).CanMonitor() {
		filter.UserID = &userID
	}

	alerts, err := s.alerts.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list fall alerts: %w", err)
	}
	return alerts, nil
}

// Get returns one alert if the caller may see it.
func (s *Service) Get(ctx context.Context, alertID uuid.UUID) (*domain.FallAlert, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("get fall alert: %w", err)
	}
	if !alert.VisibleTo(userID, callerRole(ctx)) {
		return nil, domain.ErrForbidden
	}
	return alert, nil
}

func callerRole(ctx context.Context) domain.Role {
	return domain.Role(ctxutil.UserRoleFromCtx(ctx))
}
