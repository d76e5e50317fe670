package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeOfDay is a wall-clock minute without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// TimeOfDayOf returns the wall-clock minute of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" (seconds are dropped).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, ErrValidation)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Reminder is a recurring or one-time reminder owned by a user.
type Reminder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Notes     *string
	RemindAt  TimeOfDay
	Repeat    RepeatType
	Enabled   bool
	CreatedAt time.Time
}

// MatchesRecurrence reports whether the reminder's recurrence policy allows
// it to fire on the calendar day of now. CreatedAt is the anchor for weekly
// and monthly reminders and is compared in now's location. One-time reminders
// always match; the trigger ledger suppresses repeats within the same day.
func (r *Reminder) MatchesRecurrence(now time.Time) bool {
	anchor := r.CreatedAt.In(now.Location())

	switch r.Repeat {
	case RepeatDaily, RepeatNone:
		return true
	case RepeatWeekly:
		return now.Weekday() == anchor.Weekday()
	case RepeatMonthly:
		return now.Day() == anchor.Day()
	}
	return false
}

// ReminderEvent is one entry of the trigger ledger.
type ReminderEvent struct {
	ID          uuid.UUID
	ReminderID  uuid.UUID
	UserID      uuid.UUID
	Title       string
	TriggeredAt time.Time
	TriggerDate time.Time
}
