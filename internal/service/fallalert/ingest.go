package fallalert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/service/notify"
)

// IngestResult is returned to the detection camera.
type IngestResult struct {
	FallAlertID       uuid.UUID     `json:"fallAlertId"`
	NotificationsSent notify.Result `json:"notificationsSent"`
}

// Ingest stores a fall report and notifies caregivers and emergency
// contacts. The alert is persisted before any notification; delivery
// failures only show up in the returned counts.
func (s *Service) Ingest(ctx context.Context, input IngestInput) (*IngestResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID := uuid.MustParse(input.UserID)
	detectedAt, err := parseTimestamp(input.Timestamp, s.opts.Location)
	if err != nil {
		return nil, domain.NewValidationError("timestamp", domain.MsgInvalidFormat)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	now := s.now().UTC()
	alert, err := s.alerts.Create(ctx, &domain.FallAlert{
		ID:            uuid.New(),
		UserID:        userID,
		DetectedAt:    detectedAt.UTC(),
		Confidence:    input.Confidence,
		ImageURL:      input.ImageURL,
		FallType:      input.FallType,
		EscalateAfter: now.Add(s.opts.EscalationDelay),
		CreatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("create fall alert: %w", err)
	}
	alert.UserName = user.Name

	s.log.InfoContext(ctx, "fall alert received",
		slog.String("fall_alert_id", alert.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("escalate_after", alert.EscalateAfter),
	)

	result := &IngestResult{FallAlertID: alert.ID}

	recipients := s.resolver.Resolve(ctx, userID)
	if recipients.IsEmpty() {
		s.log.WarnContext(ctx, "fall alert has no recipients",
			slog.String("fall_alert_id", alert.ID.String()),
			slog.String("user_id", userID.String()),
		)
		return result, nil
	}

	deliveries := s.immediateWave(alert, user.Name, recipients)

	// The camera may hang up; the notifications must still go out.
	result.NotificationsSent = s.dispatcher.Dispatch(context.WithoutCancel(ctx), deliveries)

	s.log.InfoContext(ctx, "fall alert dispatched",
		slog.String("fall_alert_id", alert.ID.String()),
		slog.Int("caregivers", len(recipients.Caregivers)),
		slog.Int("emergency_contacts", len(recipients.EmergencyContacts)),
		slog.Int("push_sent", result.NotificationsSent.Push.Sent),
		slog.Int("email_sent", result.NotificationsSent.Email.Sent),
	)

	return result, nil
}

// immediateWave builds push to caregivers and email to everyone with an
// address. SMS is held back for escalation.
func (s *Service) immediateWave(a *domain.FallAlert, elderlyName string, r domain.Recipients) []notify.Delivery {
	var out []notify.Delivery

	push := s.pushMessage(a, elderlyName)
	for _, c := range r.Caregivers {
		if c.CanReceivePush() {
			out = append(out, notify.Delivery{Channel: domain.ChannelPush, Recipient: c, Message: push})
		}
	}

	for _, rc := range r.All() {
		if rc.HasEmail() {
			out = append(out, notify.Delivery{
				Channel:   domain.ChannelEmail,
				Recipient: rc,
				Message:   s.emailMessage(a, elderlyName, rc.Name),
			})
		}
	}

	return out
}
