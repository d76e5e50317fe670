package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that either receives care or provides it.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Phone     *string
	Role      Role
	CreatedAt time.Time
}

// EmergencyContact is a non-user person to notify about an elderly user.
type EmergencyContact struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Phone        *string
	Email        *string
	Relationship *string
	Priority     int
}

// Caregiver is a caregiver-role user linked to an elderly user.
type Caregiver struct {
	User
	IsPrimary    bool
	Relationship *string
}
