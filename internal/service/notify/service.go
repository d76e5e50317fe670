// Package notify delivers notifications over push, email and SMS.
//
// Each channel sender turns one (recipient, message) pair into an Outcome and
// writes one notification log entry per attempt. Delivery errors never escape
// a sender; callers inspect the Outcome instead. The Dispatcher fans a set of
// deliveries out concurrently and aggregates per-channel counts.
package notify

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
)

// EmailTemplate names one of the built-in email layouts.
type EmailTemplate string

const (
	TemplateFallAlert EmailTemplate = "fall_alert"
	TemplateReminder  EmailTemplate = "reminder"
	TemplateTest      EmailTemplate = "test"
)

// Message is channel-agnostic notification content.
type Message struct {
	Category domain.Category
	// UserID is the user the notification concerns. It owns the log entries.
	UserID *uuid.UUID
	// Title is the push title and the email subject.
	Title string
	// Body is the push body and the SMS text.
	Body string
	Tag  string
	URL  string
	Data map[string]string
	// Urgent requests high-priority delivery where the channel supports it.
	Urgent bool

	Template     EmailTemplate
	TemplateData any
}

// Outcome is the result of sending one message to one recipient.
type Outcome struct {
	Delivered bool
	// Skipped means nothing was attempted (no address, channel disabled).
	Skipped   bool
	Retryable bool
	Err       error
}

// Status maps the outcome onto the recorded delivery status.
func (o Outcome) Status() domain.DeliveryStatus {
	switch {
	case o.Delivered:
		return domain.DeliverySent
	case o.Skipped:
		return domain.DeliverySkipped
	}
	return domain.DeliveryFailed
}

// Sender delivers a message to a recipient over one channel.
type Sender interface {
	Send(ctx context.Context, to domain.Recipient, msg Message) Outcome
}

// Delivery is one unit of work for the Dispatcher.
type Delivery struct {
	Channel   domain.Channel
	Recipient domain.Recipient
	Message   Message
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
