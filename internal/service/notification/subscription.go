package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
)

const maxEndpointLength = 2048

// SubscribeInput is a browser PushSubscription or an FCM registration token
// (endpoint without keys).
type SubscribeInput struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

func (i SubscribeInput) Validate() error {
	var errs []domain.FieldError

	endpoint := strings.TrimSpace(i.Endpoint)
	switch {
	case endpoint == "":
		errs = append(errs, domain.FieldError{Field: "endpoint", Message: domain.MsgMissingRequiredField})
	case len(endpoint) > maxEndpointLength:
		errs = append(errs, domain.FieldError{Field: "endpoint", Message: "too long"})
	}

	hasP256dh, hasAuth := i.Keys.P256dh != "", i.Keys.Auth != ""
	if hasP256dh != hasAuth {
		errs = append(errs, domain.FieldError{Field: "keys", Message: "p256dh and auth must be set together"})
	}
	if hasP256dh && endpoint != "" {
		u, err := url.Parse(endpoint)
		if err != nil || u.Scheme != "https" || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "endpoint", Message: domain.MsgInvalidFormat})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Subscribe registers a push subscription for the caller. Registering an
// endpoint that is already stored succeeds and reports created=false; the
// endpoint is then owned by the caller with the keys just sent, so a browser
// shared between accounts notifies whoever signed in last.
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) (bool, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return false, err
	}
	if err := input.Validate(); err != nil {
		return false, err
	}

	created, err := s.subs.Create(ctx, domain.PushSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		Endpoint:  strings.TrimSpace(input.Endpoint),
		P256dh:    input.Keys.P256dh,
		Auth:      input.Keys.Auth,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("create push subscription: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "push subscription registered",
			slog.String("user_id", userID.String()),
			slog.Bool("web_push", input.Keys.P256dh != ""),
		)
	}
	return created, nil
}

// Unsubscribe removes the caller's subscription for endpoint. Removing an
// unknown endpoint is not an error.
func (s *Service) Unsubscribe(ctx context.Context, endpoint string) (bool, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return false, err
	}
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return false, domain.NewValidationError("endpoint", domain.MsgMissingRequiredField)
	}

	removed, err := s.subs.DeleteByEndpoint(ctx, endpoint, &userID)
	if err != nil {
		return false, fmt.Errorf("delete push subscription: %w", err)
	}
	if removed {
		s.log.InfoContext(ctx, "push subscription removed", slog.String("user_id", userID.String()))
	}
	return removed, nil
}
