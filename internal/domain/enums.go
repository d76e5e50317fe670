package domain

// Role is the account role carried in access tokens.
type Role string

const (
	RoleElderly   Role = "elderly"
	RoleCaregiver Role = "caregiver"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleElderly, RoleCaregiver, RoleAdmin:
		return true
	}
	return false
}

// CanMonitor reports whether the role sees alerts of every user.
func (r Role) CanMonitor() bool {
	return r == RoleCaregiver || r == RoleAdmin
}

// RepeatType is the recurrence policy of a reminder.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
)

func (t RepeatType) String() string { return string(t) }

func (t RepeatType) IsValid() bool {
	switch t {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	}
	return false
}

// Channel is a notification delivery channel.
type Channel string

const (
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// AllChannels lists channels in reporting order.
var AllChannels = []Channel{ChannelPush, ChannelEmail, ChannelSMS}

func (c Channel) String() string { return string(c) }

func (c Channel) IsValid() bool {
	switch c {
	case ChannelPush, ChannelEmail, ChannelSMS:
		return true
	}
	return false
}

// Category groups notifications by the event that caused them.
type Category string

const (
	CategoryFallAlert  Category = "fall_alert"
	CategoryEscalation Category = "fall_alert_escalation"
	CategoryReminder   Category = "reminder"
	CategoryTest       Category = "test"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryFallAlert, CategoryEscalation, CategoryReminder, CategoryTest:
		return true
	}
	return false
}

// DeliveryStatus is the recorded result of one send attempt.
type DeliveryStatus string

const (
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
	DeliverySkipped DeliveryStatus = "skipped"
)

func (s DeliveryStatus) String() string { return string(s) }

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliverySent, DeliveryFailed, DeliverySkipped:
		return true
	}
	return false
}

// RecipientRole tells why a recipient was selected.
type RecipientRole string

const (
	RecipientCaregiver        RecipientRole = "caregiver"
	RecipientEmergencyContact RecipientRole = "emergency_contact"
	RecipientSelf             RecipientRole = "self"
)
