package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recipient is a resolved notification target. It is computed per dispatch
// and never stored.
type Recipient struct {
	Role      RecipientRole
	UserID    *uuid.UUID
	Name      string
	Email     *string
	Phone     *string
	Priority  int
	IsPrimary bool
}

// HasEmail reports whether the recipient can be reached by email.
func (r Recipient) HasEmail() bool { return r.Email != nil && *r.Email != "" }

// HasPhone reports whether the recipient can be reached by SMS.
func (r Recipient) HasPhone() bool { return r.Phone != nil && *r.Phone != "" }

// CanReceivePush reports whether the recipient is a user who may own push subscriptions.
func (r Recipient) CanReceivePush() bool { return r.UserID != nil }

// Recipients is the output of recipient resolution for one elderly user.
type Recipients struct {
	Caregivers        []Recipient
	EmergencyContacts []Recipient
	FellBack          bool
}

// All returns caregivers followed by emergency contacts.
func (r Recipients) All() []Recipient {
	all := make([]Recipient, 0, len(r.Caregivers)+len(r.EmergencyContacts))
	all = append(all, r.Caregivers...)
	return append(all, r.EmergencyContacts...)
}

// IsEmpty reports whether nobody can be notified.
func (r Recipients) IsEmpty() bool {
	return len(r.Caregivers) == 0 && len(r.EmergencyContacts) == 0
}

// NotificationLogEntry is an append-only record of one send attempt.
type NotificationLogEntry struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Channel   Channel
	Category  Category
	Recipient string
	Subject   *string
	Status    DeliveryStatus
	MessageID *string
	Error     *string
	CreatedAt time.Time
}

// NotificationLogFilter narrows a notification log query.
type NotificationLogFilter struct {
	UserID   *uuid.UUID
	Channel  *Channel
	Category *Category
	Status   *DeliveryStatus
	Limit    int
}

// ChannelCounts is an aggregate of log entries for one channel.
type ChannelCounts struct {
	Channel Channel `json:"channel"`
	Total   int     `json:"total"`
	Sent    int     `json:"sent"`
	Failed  int     `json:"failed"`
	Skipped int     `json:"skipped"`
}

// NotificationCounts is a total/failed pair over a time window.
type NotificationCounts struct {
	Total  int `json:"total"`
	Failed int `json:"failed"`
}

// PushSubscription is a browser or device push endpoint owned by a user.
// A subscription without key material is an FCM registration token.
type PushSubscription struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Endpoint  string
	P256dh    string
	Auth      string
	CreatedAt time.Time
}

// IsWebPush reports whether the subscription carries Web Push encryption keys.
func (s *PushSubscription) IsWebPush() bool {
	return s.P256dh != "" && s.Auth != ""
}
