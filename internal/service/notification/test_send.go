package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/service/notify"
)

// TestResult reports a single test send.
type TestResult struct {
	Channel domain.Channel        `json:"channel"`
	Status  domain.DeliveryStatus `json:"status"`
	Error   string                `json:"error,omitempty"`
}

// SendTestEmail mails the test template to address, or to the caller's own
// address when address is empty.
func (s *Service) SendTestEmail(ctx context.Context, address string) (*TestResult, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	address = strings.TrimSpace(address)
	if address == "" {
		address = user.Email
	}
	if _, err := mail.ParseAddress(address); err != nil {
		return nil, domain.NewValidationError("email", domain.MsgInvalidFormat)
	}

	to := domain.Recipient{Role: domain.RecipientSelf, UserID: &user.ID, Name: user.Name, Email: &address}
	msg := notify.Message{
		Category:     domain.CategoryTest,
		UserID:       &user.ID,
		Title:        "Test email",
		Template:     notify.TemplateTest,
		TemplateData: notify.TestEmail{SentAt: s.now().UTC().Format("Jan 2, 2006 3:04 PM MST")},
	}
	return s.send(ctx, domain.ChannelEmail, to, msg), nil
}

// SendTestSMS texts phone.
func (s *Service) SendTestSMS(ctx context.Context, phone string) (*TestResult, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(phone) == "" {
		return nil, domain.NewValidationError("phone", domain.MsgMissingRequiredField)
	}
	if _, ok := domain.NormalizePhone(phone); !ok {
		return nil, domain.NewValidationError("phone", domain.MsgInvalidFormat)
	}

	to := domain.Recipient{Role: domain.RecipientSelf, UserID: &user.ID, Name: user.Name, Phone: &phone}
	msg := notify.Message{
		Category: domain.CategoryTest,
		UserID:   &user.ID,
		Body:     "CareAlert test message. SMS notifications are working.",
	}
	return s.send(ctx, domain.ChannelSMS, to, msg), nil
}

// SendTestPush pushes a test notification to every subscription of the
// caller.
func (s *Service) SendTestPush(ctx context.Context) (*TestResult, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	to := domain.Recipient{Role: domain.RecipientSelf, UserID: &user.ID, Name: user.Name}
	msg := notify.Message{
		Category: domain.CategoryTest,
		UserID:   &user.ID,
		Title:    "Test notification",
		Body:     "Push notifications are working.",
		Tag:      "test-" + uuid.NewString(),
		URL:      "/dashboard",
	}
	return s.send(ctx, domain.ChannelPush, to, msg), nil
}

func (s *Service) caller(ctx context.Context) (*domain.User, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get caller: %w", err)
	}
	return user, nil
}

func (s *Service) send(ctx context.Context, channel domain.Channel, to domain.Recipient, msg notify.Message) *TestResult {
	res := &TestResult{Channel: channel}

	sender, ok := s.senders[channel]
	if !ok {
		res.Status = domain.DeliverySkipped
		res.Error = "channel not configured"
		return res
	}

	out := sender.Send(ctx, to, msg)
	res.Status = out.Status()
	if out.Err != nil {
		res.Error = out.Err.Error()
	}

	s.log.InfoContext(ctx, "test notification sent",
		slog.String("channel", channel.String()),
		slog.String("status", res.Status.String()),
	)
	return res
}
