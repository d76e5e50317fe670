// Package fcm delivers push notifications to Firebase Cloud Messaging
// registration tokens.
package fcm

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/heartmarshall/carealert-backend/internal/provider"
)

const providerName = "fcm"

// sender is the part of *messaging.Client the adapter uses.
type sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Notification is the content of one FCM message.
type Notification struct {
	Title string
	Body  string
	Tag   string
	URL   string
	Data  map[string]string
	// HighPriority asks FCM for immediate delivery.
	HighPriority bool
}

// Client wraps the Firebase messaging client.
type Client struct {
	messaging sender
	classify  func(error) error
	log       *slog.Logger
}

// NewClient initializes a Firebase app from a service account file.
func NewClient(ctx context.Context, credentialsFile string, logger *slog.Logger) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("fcm: init firebase app: %w", err)
	}

	mc, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("fcm: messaging client: %w", err)
	}

	return newClient(mc, classifyFirebaseError, logger), nil
}

func newClient(s sender, classify func(error) error, logger *slog.Logger) *Client {
	return &Client{
		messaging: s,
		classify:  classify,
		log:       logger.With("adapter", providerName),
	}
}

// Send delivers n to a registration token. An unregistered token is
// reported as provider.ErrSubscriptionGone.
func (c *Client) Send(ctx context.Context, token string, n Notification) (provider.SendResult, error) {
	msg := buildMessage(token, n)

	id, err := c.messaging.Send(ctx, msg)
	if err != nil {
		return provider.SendResult{}, c.classify(err)
	}

	c.log.DebugContext(ctx, "fcm message sent", slog.String("message_id", id))
	return provider.SendResult{MessageID: id}, nil
}

func buildMessage(token string, n Notification) *messaging.Message {
	data := make(map[string]string, len(n.Data)+1)
	for k, v := range n.Data {
		data[k] = v
	}
	if n.URL != "" {
		data["url"] = n.URL
	}

	priority := "normal"
	urgency := "normal"
	if n.HighPriority {
		priority = "high"
		urgency = "high"
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: priority,
			Notification: &messaging.AndroidNotification{
				Tag: n.Tag,
			},
		},
		Webpush: &messaging.WebpushConfig{
			Headers: map[string]string{"Urgency": urgency},
			Notification: &messaging.WebpushNotification{
				Title: n.Title,
				Body:  n.Body,
				Tag:   n.Tag,
				Icon:  "/icon-192.png",
			},
		},
	}
	if n.URL != "" {
		msg.Webpush.FCMOptions = &messaging.WebpushFCMOptions{Link: n.URL}
	}
	return msg
}

func classifyFirebaseError(err error) error {
	switch {
	case messaging.IsUnregistered(err):
		return &provider.DeliveryError{Provider: providerName, Err: fmt.Errorf("%w: %v", provider.ErrSubscriptionGone, err)}
	case messaging.IsUnavailable(err), messaging.IsInternal(err), messaging.IsQuotaExceeded(err):
		return &provider.DeliveryError{Provider: providerName, Retryable: true, Err: err}
	}
	return &provider.DeliveryError{Provider: providerName, Err: err}
}
