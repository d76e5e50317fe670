package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/adapter/provider/fcm"
	"github.com/heartmarshall/carealert-backend/internal/adapter/provider/webpush"
	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/provider"
)

type subscriptionRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PushSubscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string, userID *uuid.UUID) (bool, error)
}

// WebPushClient sends an encrypted payload to a browser subscription.
type WebPushClient interface {
	Send(ctx context.Context, sub webpush.Subscription, payload []byte, urgency webpush.Urgency) (provider.SendResult, error)
}

// FCMClient sends a notification to an FCM registration token.
type FCMClient interface {
	Send(ctx context.Context, token string, n fcm.Notification) (provider.SendResult, error)
}

var (
	errNoSubscriptions = errors.New("no push subscriptions")
	errWebPushDisabled = errors.New("web push not configured")
	errFCMDisabled     = errors.New("fcm not configured")
)

// PushSender delivers notifications to every push subscription of a user.
type PushSender struct {
	subs   subscriptionRepo
	web    WebPushClient
	fcm    FCMClient
	log    *Log
	logger *slog.Logger
}

// NewPushSender creates a PushSender. web and fcm may be nil when the
// transport is not configured; subscriptions needing it are skipped.
func NewPushSender(logger *slog.Logger, subs subscriptionRepo, web WebPushClient, fcmClient FCMClient, log *Log) *PushSender {
	return &PushSender{
		subs:   subs,
		web:    web,
		fcm:    fcmClient,
		log:    log,
		logger: logger.With("service", "push_sender"),
	}
}

// pushPayload is the JSON the service worker reads.
type pushPayload struct {
	Title              string            `json:"title"`
	Body               string            `json:"body"`
	Tag                string            `json:"tag,omitempty"`
	Icon               string            `json:"icon"`
	RequireInteraction bool              `json:"requireInteraction"`
	Data               map[string]string `json:"data"`
}

// Send pushes msg to every subscription of the recipient. The outcome is
// delivered if at least one subscription accepted the message.
func (s *PushSender) Send(ctx context.Context, to domain.Recipient, msg Message) Outcome {
	if !to.CanReceivePush() {
		return Outcome{Skipped: true}
	}
	userID := *to.UserID

	subs, err := s.subs.ListByUser(ctx, userID)
	if err != nil {
		err = fmt.Errorf("load subscriptions: %w", err)
		s.log.record(ctx, msg, attempt{
			Channel:   domain.ChannelPush,
			Recipient: userID.String(),
			Status:    domain.DeliveryFailed,
			Note:      err.Error(),
		})
		return Outcome{Retryable: true, Err: err}
	}

	if len(subs) == 0 {
		s.log.record(ctx, msg, attempt{
			Channel:   domain.ChannelPush,
			Recipient: userID.String(),
			Status:    domain.DeliverySkipped,
			Note:      errNoSubscriptions.Error(),
		})
		return Outcome{Skipped: true}
	}

	data := make(map[string]string, len(msg.Data)+1)
	for k, v := range msg.Data {
		data[k] = v
	}
	if msg.URL != "" {
		data["url"] = msg.URL
	}
	payload, err := json.Marshal(pushPayload{
		Title:              msg.Title,
		Body:               msg.Body,
		Tag:                msg.Tag,
		Icon:               "/icon-192.png",
		RequireInteraction: msg.Urgent,
		Data:               data,
	})
	if err != nil {
		return Outcome{Err: fmt.Errorf("encode push payload: %w", err)}
	}

	var (
		delivered, attempted int
		retryable            bool
		lastErr              error
	)
	for _, sub := range subs {
		res, err := s.sendOne(ctx, sub, msg, payload)

		switch {
		case err == nil:
			delivered++
			attempted++
			s.log.record(ctx, msg, attempt{
				Channel:   domain.ChannelPush,
				Recipient: sub.Endpoint,
				Status:    domain.DeliverySent,
				MessageID: res.MessageID,
			})
		case errors.Is(err, errWebPushDisabled), errors.Is(err, errFCMDisabled):
			s.log.record(ctx, msg, attempt{
				Channel:   domain.ChannelPush,
				Recipient: sub.Endpoint,
				Status:    domain.DeliverySkipped,
				Note:      err.Error(),
			})
		case errors.Is(err, provider.ErrSubscriptionGone):
			attempted++
			lastErr = err
			s.removeSubscription(ctx, sub)
			s.log.record(ctx, msg, attempt{
				Channel:   domain.ChannelPush,
				Recipient: sub.Endpoint,
				Status:    domain.DeliveryFailed,
				Note:      provider.ErrSubscriptionGone.Error(),
			})
		default:
			attempted++
			lastErr = err
			retryable = retryable || provider.IsRetryable(err)
			s.logger.WarnContext(ctx, "push failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
			s.log.record(ctx, msg, attempt{
				Channel:   domain.ChannelPush,
				Recipient: sub.Endpoint,
				Status:    domain.DeliveryFailed,
				Note:      err.Error(),
			})
		}
	}

	switch {
	case delivered > 0:
		return Outcome{Delivered: true}
	case attempted == 0:
		return Outcome{Skipped: true}
	}
	return Outcome{Retryable: retryable, Err: lastErr}
}

func (s *PushSender) sendOne(ctx context.Context, sub domain.PushSubscription, msg Message, payload []byte) (provider.SendResult, error) {
	if sub.IsWebPush() {
		if s.web == nil {
			return provider.SendResult{}, errWebPushDisabled
		}
		urgency := webpush.UrgencyNormal
		if msg.Urgent {
			urgency = webpush.UrgencyHigh
		}
		return s.web.Send(ctx, webpush.Subscription{
			Endpoint: sub.Endpoint,
			P256dh:   sub.P256dh,
			Auth:     sub.Auth,
		}, payload, urgency)
	}

	if s.fcm == nil {
		return provider.SendResult{}, errFCMDisabled
	}
	return s.fcm.Send(ctx, sub.Endpoint, fcm.Notification{
		Title:        msg.Title,
		Body:         msg.Body,
		Tag:          msg.Tag,
		URL:          msg.URL,
		Data:         msg.Data,
		HighPriority: msg.Urgent,
	})
}

func (s *PushSender) removeSubscription(ctx context.Context, sub domain.PushSubscription) {
	if _, err := s.subs.DeleteByEndpoint(ctx, sub.Endpoint, nil); err != nil {
		s.logger.ErrorContext(ctx, "remove expired push subscription",
			slog.String("subscription_id", sub.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	s.logger.InfoContext(ctx, "removed expired push subscription",
		slog.String("subscription_id", sub.ID.String()),
		slog.String("user_id", sub.UserID.String()),
	)
}
