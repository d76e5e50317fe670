package notification

import (
	"context"
	"fmt"

	"github.com/heartmarshall/carealert-backend/internal/domain"
)

// LogsInput filters the caller's notification log. Empty strings mean no
// filter.
type LogsInput struct {
	Channel  string
	Category string
	Status   string
	Limit    int
}

func (i LogsInput) Validate() error {
	var errs []domain.FieldError

	if i.Channel != "" && !domain.Channel(i.Channel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "channel", Message: domain.MsgInvalidFormat})
	}
	if i.Category != "" && !domain.Category(i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: domain.MsgInvalidFormat})
	}
	if i.Status != "" && !domain.DeliveryStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: domain.MsgInvalidFormat})
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: domain.MsgOutOfRange})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Logs returns log entries owned by the caller, newest first.
func (s *Service) Logs(ctx context.Context, input LogsInput) ([]domain.NotificationLogEntry, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.NotificationLogFilter{UserID: &userID, Limit: input.Limit}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if input.Channel != "" {
		c := domain.Channel(input.Channel)
		f.Channel = &c
	}
	if input.Category != "" {
		c := domain.Category(input.Category)
		f.Category = &c
	}
	if input.Status != "" {
		st := domain.DeliveryStatus(input.Status)
		f.Status = &st
	}

	entries, err := s.logs.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list notification logs: %w", err)
	}
	return entries, nil
}
