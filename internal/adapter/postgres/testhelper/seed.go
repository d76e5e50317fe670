package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/carealert-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	phone := "98765" + suffix[:5]
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Phone:     &phone,
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, phone, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5::user_role, $6, $6)`,
		user.ID, user.Email, user.Name, user.Phone, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedRelationship links a caregiver to an elderly user with the given status.
func SeedRelationship(t *testing.T, pool *pgxpool.Pool, caregiverID, elderlyID uuid.UUID, primary bool, status string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO caregiver_relationships (caregiver_id, elderly_id, is_primary, status)
		 VALUES ($1, $2, $3, $4)`,
		caregiverID, elderlyID, primary, status,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRelationship: %v", err)
	}
}

// SeedContact creates an emergency contact for userID.
func SeedContact(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, email, phone *string, priority int) domain.EmergencyContact {
	t.Helper()

	c := domain.EmergencyContact{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Email:    email,
		Phone:    phone,
		Priority: priority,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO emergency_contacts (id, user_id, name, phone, email, priority)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.UserID, c.Name, c.Phone, c.Email, c.Priority,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContact: %v", err)
	}

	return c
}

// SeedFallAlert creates an unacknowledged fall alert whose escalation is due
// at escalateAfter.
func SeedFallAlert(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, escalateAfter time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO fall_alerts (id, user_id, detected_at, confidence, escalate_after, created_at)
		 VALUES ($1, $2, $3, 0.9, $4, $3)`,
		id, userID, now, escalateAfter,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFallAlert: %v", err)
	}

	return id
}

// SeedReminder creates an enabled reminder at the given wall-clock minute.
func SeedReminder(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, at domain.TimeOfDay, repeat domain.RepeatType, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO reminders (id, user_id, title, remind_at, repeat_type, enabled, created_at)
		 VALUES ($1, $2, $3, $4::time, $5::repeat_type, true, $6)`,
		id, userID, "Reminder "+uniqueSuffix(), at.String(), string(repeat), createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReminder: %v", err)
	}

	return id
}
