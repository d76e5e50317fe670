package fallalert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/metrics"
	"github.com/heartmarshall/carealert-backend/internal/service/notify"
)

// EscalateDue sends the SMS wave for every alert whose grace period has
// passed without acknowledgement. Claiming an alert marks it escalated, so
// each alert escalates at most once even if sweeps overlap or the process
// restarts. An alert whose recipients cannot be loaded is released and
// retried by the next sweep. Returns the number of alerts escalated.
func (s *Service) EscalateDue(ctx context.Context, now time.Time) (int, error) {
	claimedAt := now.UTC().Truncate(time.Microsecond)
	total := 0
	for {
		alerts, err := s.alerts.ClaimDueEscalations(ctx, claimedAt, s.opts.EscalationBatch)
		if err != nil {
			return total, fmt.Errorf("claim due escalations: %w", err)
		}

		// Claimed alerts are committed as escalated; finish them even if the
		// sweep is cancelled, otherwise their SMS wave is lost.
		workCtx := context.WithoutCancel(ctx)
		released := 0
		for i := range alerts {
			if s.escalate(workCtx, &alerts[i], claimedAt) {
				total++
			} else {
				released++
			}
		}

		// A released alert is due again at once; leave it to the next sweep.
		if len(alerts) < s.opts.EscalationBatch || released > 0 || ctx.Err() != nil {
			return total, nil
		}
	}
}

// escalate reports whether the alert stays escalated.
func (s *Service) escalate(ctx context.Context, a *domain.FallAlert, claimedAt time.Time) bool {
	recipients, err := s.resolver.Lookup(ctx, a.UserID)
	if err != nil {
		s.log.ErrorContext(ctx, "resolve escalation recipients",
			slog.String("fall_alert_id", a.ID.String()),
			slog.String("user_id", a.UserID.String()),
			slog.String("error", err.Error()),
		)
		if err := s.alerts.ReleaseEscalation(ctx, a.ID, claimedAt); err != nil {
			s.log.ErrorContext(ctx, "release escalation claim",
				slog.String("fall_alert_id", a.ID.String()),
				slog.String("error", err.Error()),
			)
		}
		return false
	}

	metrics.EscalationFired()
	msg := s.escalationMessage(a)

	var deliveries []notify.Delivery
	for _, rc := range recipients.All() {
		if rc.HasPhone() {
			deliveries = append(deliveries, notify.Delivery{Channel: domain.ChannelSMS, Recipient: rc, Message: msg})
		}
	}

	if len(deliveries) == 0 {
		s.log.WarnContext(ctx, "fall alert escalation has no phone recipients",
			slog.String("fall_alert_id", a.ID.String()),
			slog.String("user_id", a.UserID.String()),
		)
		return true
	}

	res := s.dispatcher.Dispatch(ctx, deliveries)

	s.log.WarnContext(ctx, "fall alert escalated",
		slog.String("fall_alert_id", a.ID.String()),
		slog.String("user_id", a.UserID.String()),
		slog.Int("sms_sent", res.SMS.Sent),
		slog.Int("sms_failed", res.SMS.Failed),
	)
	return true
}
