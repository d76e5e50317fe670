package notify

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/provider"
)

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// ErrEmailDisabled is the skip reason when no SMTP server is configured.
var ErrEmailDisabled = errors.New("email not configured")

// Mailer sends a rendered HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) (provider.SendResult, error)
}

// FallAlertEmail is the data of the fall_alert template.
type FallAlertEmail struct {
	RecipientName string
	ElderlyName   string
	DetectedAt    string
	Confidence    string
	ImageURL      string
	DashboardURL  string
}

// ReminderEmail is the data of the reminder template.
type ReminderEmail struct {
	Title string
	Notes string
	Time  string
}

// TestEmail is the data of the test template.
type TestEmail struct {
	SentAt string
}

// EmailSender renders a template and mails it.
type EmailSender struct {
	mailer Mailer
	log    *Log
	logger *slog.Logger
}

// NewEmailSender creates an EmailSender. A nil mailer disables email: every
// send is recorded as skipped.
func NewEmailSender(logger *slog.Logger, mailer Mailer, log *Log) *EmailSender {
	return &EmailSender{
		mailer: mailer,
		log:    log,
		logger: logger.With("service", "email_sender"),
	}
}

// Send renders msg.Template with msg.TemplateData and mails it to the
// recipient. msg.Title is the subject.
func (s *EmailSender) Send(ctx context.Context, to domain.Recipient, msg Message) Outcome {
	if !to.HasEmail() {
		return Outcome{Skipped: true}
	}
	addr := *to.Email

	if s.mailer == nil {
		s.log.record(ctx, msg, attempt{
			Channel:   domain.ChannelEmail,
			Recipient: addr,
			Status:    domain.DeliverySkipped,
			Note:      ErrEmailDisabled.Error(),
		})
		return Outcome{Skipped: true}
	}

	body, err := renderEmail(msg)
	if err != nil {
		s.logger.ErrorContext(ctx, "render email", slog.String("template", string(msg.Template)), slog.String("error", err.Error()))
		s.log.record(ctx, msg, attempt{
			Channel:   domain.ChannelEmail,
			Recipient: addr,
			Status:    domain.DeliveryFailed,
			Note:      err.Error(),
		})
		return Outcome{Err: err}
	}

	res, err := s.mailer.Send(ctx, addr, msg.Title, body)
	if err != nil {
		s.logger.WarnContext(ctx, "email failed",
			slog.String("to", domain.MaskRecipient(addr)),
			slog.String("category", string(msg.Category)),
			slog.String("error", err.Error()),
		)
		s.log.record(ctx, msg, attempt{
			Channel:   domain.ChannelEmail,
			Recipient: addr,
			Status:    domain.DeliveryFailed,
			Note:      err.Error(),
		})
		return Outcome{Retryable: provider.IsRetryable(err), Err: err}
	}

	s.log.record(ctx, msg, attempt{
		Channel:   domain.ChannelEmail,
		Recipient: addr,
		Status:    domain.DeliverySent,
		MessageID: res.MessageID,
	})
	return Outcome{Delivered: true}
}

func renderEmail(msg Message) (string, error) {
	name := msg.Template
	if name == "" {
		name = TemplateTest
	}
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, string(name)+".html", msg.TemplateData); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
