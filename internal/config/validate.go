package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if strings.TrimSpace(c.Ingest.APIKey) == "" {
		return fmt.Errorf("ingest.api_key must be set")
	}

	if c.Escalation.DelayMinutes <= 0 {
		return fmt.Errorf("escalation.delay_minutes must be > 0 (got %d)", c.Escalation.DelayMinutes)
	}
	if c.Escalation.BatchSize <= 0 {
		return fmt.Errorf("escalation.batch_size must be > 0 (got %d)", c.Escalation.BatchSize)
	}

	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	if c.Notify.DispatchTimeout <= 0 {
		return fmt.Errorf("notify.dispatch_timeout must be > 0 (got %s)", c.Notify.DispatchTimeout)
	}

	if (c.Push.VAPIDPublicKey == "") != (c.Push.VAPIDPrivateKey == "") {
		return fmt.Errorf("push: vapid_public_key and vapid_private_key must be set together")
	}

	if c.SMTP.Enabled() && (c.SMTP.Port <= 0 || c.SMTP.Port > 65535) {
		return fmt.Errorf("smtp.port must be in 1..65535 (got %d)", c.SMTP.Port)
	}

	if c.Retention.NotificationLogDays <= 0 {
		return fmt.Errorf("retention.notification_log_days must be > 0 (got %d)", c.Retention.NotificationLogDays)
	}

	return nil
}

func (s *SchedulerConfig) validate() error {
	if s.Interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %s)", s.Interval)
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	return nil
}
