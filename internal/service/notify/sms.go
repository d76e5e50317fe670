package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/provider"
)

// ErrInvalidPhone is reported for numbers that do not normalize to 10 digits.
var ErrInvalidPhone = errors.New("invalid phone number")

const simulatedNote = "simulated: no SMS provider configured"

// SMSClient sends a text to a normalized phone number.
type SMSClient interface {
	Send(ctx context.Context, number, message string) (provider.SendResult, error)
}

// SMSSender delivers message bodies as SMS.
type SMSSender struct {
	client SMSClient
	log    *Log
	logger *slog.Logger
}

// NewSMSSender creates an SMSSender.
func NewSMSSender(logger *slog.Logger, client SMSClient, log *Log) *SMSSender {
	return &SMSSender{
		client: client,
		log:    log,
		logger: logger.With("service", "sms_sender"),
	}
}

// Send texts msg.Body to the recipient's phone.
func (s *SMSSender) Send(ctx context.Context, to domain.Recipient, msg Message) Outcome {
	if !to.HasPhone() {
		return Outcome{Skipped: true}
	}

	number, ok := domain.NormalizePhone(*to.Phone)
	if !ok {
		s.log.record(ctx, msg, attempt{
			Channel:   domain.ChannelSMS,
			Recipient: *to.Phone,
			Status:    domain.DeliveryFailed,
			Note:      ErrInvalidPhone.Error(),
		})
		return Outcome{Err: ErrInvalidPhone}
	}

	res, err := s.client.Send(ctx, number, msg.Body)
	if err != nil {
		s.logger.WarnContext(ctx, "sms failed",
			slog.String("to", domain.MaskRecipient(number)),
			slog.String("category", string(msg.Category)),
			slog.String("error", err.Error()),
		)
		s.log.record(ctx, msg, attempt{
			Channel:   domain.ChannelSMS,
			Recipient: number,
			Status:    domain.DeliveryFailed,
			Note:      err.Error(),
		})
		return Outcome{Retryable: provider.IsRetryable(err), Err: err}
	}

	var note string
	if res.Simulated {
		note = simulatedNote
	}
	s.log.record(ctx, msg, attempt{
		Channel:   domain.ChannelSMS,
		Recipient: number,
		Status:    domain.DeliverySent,
		MessageID: res.MessageID,
		Note:      note,
	})

	s.logger.InfoContext(ctx, "sms sent",
		slog.String("to", domain.MaskRecipient(number)),
		slog.String("category", string(msg.Category)),
		slog.Bool("simulated", res.Simulated),
	)
	return Outcome{Delivered: true}
}
