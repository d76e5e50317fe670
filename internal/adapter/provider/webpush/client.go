// Package webpush delivers Web Push messages (RFC 8030) to browser push
// services through webpush-go, which handles VAPID signing and aes128gcm
// payload encryption.
package webpush

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	webpushgo "github.com/SherClockHolmes/webpush-go"

	"github.com/heartmarshall/carealert-backend/internal/provider"
)

const (
	providerName = "webpush"
	vapidTTL     = 12 * time.Hour
)

// Urgency is the RFC 8030 delivery urgency.
type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
)

// Subscription is the browser-issued push endpoint and its keys.
type Subscription struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// Client sends encrypted push messages to browser push services.
type Client struct {
	publicKey  string
	privateKey string
	subscriber string
	ttl        time.Duration
	httpClient *http.Client
	now        func() time.Time
	log        *slog.Logger
}

// NewClient creates a Client from base64url VAPID keys. subject is the
// contact put into the VAPID token, a mailto: address or an https URL.
func NewClient(publicKey, privateKey, subject string, ttl time.Duration, logger *slog.Logger) (*Client, error) {
	pub, priv, err := normalizeVAPIDKeys(publicKey, privateKey)
	if err != nil {
		return nil, fmt.Errorf("webpush: %w", err)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Client{
		publicKey:  pub,
		privateKey: priv,
		// webpush-go adds the mailto: scheme itself.
		subscriber: strings.TrimPrefix(subject, "mailto:"),
		ttl:        ttl,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
		log:        logger.With("adapter", providerName),
	}, nil
}

// PublicKey returns the application server key browsers subscribe with.
func (c *Client) PublicKey() string { return c.publicKey }

// Send encrypts payload for the subscription and posts it to the push
// service. A 404 or 410 reply is reported as provider.ErrSubscriptionGone.
func (c *Client) Send(ctx context.Context, sub Subscription, payload []byte, urgency Urgency) (provider.SendResult, error) {
	if urgency == "" {
		urgency = UrgencyNormal
	}

	resp, err := webpushgo.SendNotificationWithContext(ctx, payload, &webpushgo.Subscription{
		Endpoint: sub.Endpoint,
		Keys:     webpushgo.Keys{P256dh: sub.P256dh, Auth: sub.Auth},
	}, &webpushgo.Options{
		HTTPClient:      c.httpClient,
		Subscriber:      c.subscriber,
		TTL:             int(c.ttl.Seconds()),
		Urgency:         webpushgo.Urgency(urgency),
		VAPIDPublicKey:  c.publicKey,
		VAPIDPrivateKey: c.privateKey,
		VapidExpiration: c.now().Add(vapidTTL),
	})
	if err != nil {
		// Transport failures surface as *url.Error; everything else is a
		// subscription or payload the library refused to encrypt.
		var urlErr *url.Error
		retryable := errors.As(err, &urlErr) || ctx.Err() != nil
		return provider.SendResult{}, &provider.DeliveryError{Provider: providerName, Retryable: retryable, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return provider.SendResult{MessageID: resp.Header.Get("Location")}, nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		c.log.InfoContext(ctx, "push subscription gone", slog.Int("status", resp.StatusCode))
		return provider.SendResult{}, &provider.DeliveryError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Err:        provider.ErrSubscriptionGone,
		}
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return provider.SendResult{}, &provider.DeliveryError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Retryable:  provider.RetryableStatus(resp.StatusCode),
		Err:        fmt.Errorf("push service rejected message: %s", bytes.TrimSpace(msg)),
	}
}
