package fallalert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/pkg/ctxutil"
)

// Acknowledge marks the alert handled by the caller. Acknowledging an
// already acknowledged alert returns it unchanged. Caregivers and admins
// may acknowledge any alert, the elderly user only their own.
func (s *Service) Acknowledge(ctx context.Context, alertID uuid.UUID) (*domain.FallAlert, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	role := callerRole(ctx)

	var (
		alert   *domain.FallAlert
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.alerts.GetForUpdate(ctx, alertID)
		if err != nil {
			return fmt.Errorf("lock fall alert: %w", err)
		}
		if !current.VisibleTo(userID, role) {
			return domain.ErrForbidden
		}
		if current.Acknowledged {
			alert = current
			return nil
		}

		if err := s.alerts.MarkAcknowledged(ctx, alertID, userID, s.now().UTC()); err != nil {
			return fmt.Errorf("acknowledge fall alert: %w", err)
		}
		alert, err = s.alerts.GetByID(ctx, alertID)
		if err != nil {
			return fmt.Errorf("reload fall alert: %w", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "fall alert acknowledged",
			slog.String("fall_alert_id", alertID.String()),
			slog.String("acknowledged_by", userID.String()),
			slog.Bool("escalated", alert.IsEscalated()),
		)
	}
	return alert, nil
}
