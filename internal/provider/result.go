// Package provider holds types shared by the outbound delivery adapters
// (SMS, email, push).
package provider

import (
	"errors"
	"fmt"
)

// ErrSubscriptionGone is returned by push adapters when the push service
// reports that the subscription no longer exists.
var ErrSubscriptionGone = errors.New("subscription expired")

// SendResult is what a provider reports for an accepted message.
type SendResult struct {
	// MessageID is the provider's identifier for the message, if any.
	MessageID string
	// Simulated is set when nothing left the process.
	Simulated bool
}

// DeliveryError describes a rejected or failed delivery.
type DeliveryError struct {
	Provider   string
	StatusCode int
	Retryable  bool
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is a DeliveryError marked retryable.
func IsRetryable(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de) && de.Retryable
}

// RetryableStatus reports whether an HTTP status code is worth retrying
// later: server errors and rate limiting.
func RetryableStatus(code int) bool {
	return code >= 500 || code == 429
}
