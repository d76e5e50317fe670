package domain

import (
	"time"

	"github.com/google/uuid"
)

// FallAlert is a fall event reported by the detection camera.
// Acknowledged moves from false to true exactly once; AcknowledgedBy and
// AcknowledgedAt are set iff Acknowledged is true.
type FallAlert struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	UserName           string
	DetectedAt         time.Time
	Confidence         *float64
	ImageURL           *string
	FallType           *string
	Acknowledged       bool
	AcknowledgedBy     *uuid.UUID
	AcknowledgedByName *string
	AcknowledgedAt     *time.Time
	EscalateAfter      time.Time
	EscalatedAt        *time.Time
	CreatedAt          time.Time
}

// VisibleTo reports whether a user with the given role may see the alert.
func (a *FallAlert) VisibleTo(userID uuid.UUID, role Role) bool {
	return role.CanMonitor() || a.UserID == userID
}

// IsEscalated reports whether the escalation wave has already been sent.
func (a *FallAlert) IsEscalated() bool {
	return a.EscalatedAt != nil
}

// FallAlertFilter narrows a fall alert listing. Nil fields are not applied.
type FallAlertFilter struct {
	UserID       *uuid.UUID
	Acknowledged *bool
	Limit        int
}

// FallAlertStats aggregates alert counts for the stats surface.
type FallAlertStats struct {
	Total          int      `json:"total"`
	Acknowledged   int      `json:"acknowledged"`
	Pending        int      `json:"pending"`
	AvgConfidence  *float64 `json:"avgConfidence"`
	Last24h        int      `json:"last24h"`
	Unacknowledged int      `json:"unacknowledged24h"`
}
