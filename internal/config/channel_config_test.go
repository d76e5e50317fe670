package config

import (
	"testing"
	"time"
)

func TestSMSConfig_Simulated(t *testing.T) {
	t.Parallel()

	if !(SMSConfig{}).Simulated() {
		t.Error("expected simulated mode without API key")
	}
	if (SMSConfig{APIKey: "key"}).Simulated() {
		t.Error("expected real mode with API key")
	}
}

func TestSMTPConfig_Enabled(t *testing.T) {
	t.Parallel()

	if (SMTPConfig{Port: 587}).Enabled() {
		t.Error("expected disabled without host")
	}
	if !(SMTPConfig{Host: "smtp.example.com"}).Enabled() {
		t.Error("expected enabled with host")
	}
}

func TestPushConfig_Enabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     PushConfig
		webPush bool
		fcm     bool
	}{
		{name: "nothing", cfg: PushConfig{}},
		{name: "public key only", cfg: PushConfig{VAPIDPublicKey: "pub"}},
		{name: "vapid pair", cfg: PushConfig{VAPIDPublicKey: "pub", VAPIDPrivateKey: "priv"}, webPush: true},
		{name: "fcm only", cfg: PushConfig{FCMCredentialsFile: "/etc/fcm.json"}, fcm: true},
		{
			name:    "both",
			cfg:     PushConfig{VAPIDPublicKey: "pub", VAPIDPrivateKey: "priv", FCMCredentialsFile: "/etc/fcm.json"},
			webPush: true,
			fcm:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.cfg.WebPushEnabled(); got != tt.webPush {
				t.Errorf("WebPushEnabled() = %v, want %v", got, tt.webPush)
			}
			if got := tt.cfg.FCMEnabled(); got != tt.fcm {
				t.Errorf("FCMEnabled() = %v, want %v", got, tt.fcm)
			}
		})
	}
}

func TestAppConfig_DashboardURL(t *testing.T) {
	t.Parallel()

	for _, url := range []string{"https://care.example.com", "https://care.example.com/"} {
		if got := (AppConfig{URL: url}).DashboardURL(); got != "https://care.example.com/dashboard" {
			t.Errorf("DashboardURL(%q) = %q", url, got)
		}
	}
}

func TestEscalationConfig_Delay(t *testing.T) {
	t.Parallel()

	if got := (EscalationConfig{DelayMinutes: 10}).Delay(); got != 10*time.Minute {
		t.Errorf("Delay() = %s, want 10m", got)
	}
}
