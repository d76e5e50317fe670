package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Ingest     IngestConfig     `yaml:"ingest"`
	Escalation EscalationConfig `yaml:"escalation"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Notify     NotifyConfig     `yaml:"notify"`
	SMS        SMSConfig        `yaml:"sms"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	Push       PushConfig       `yaml:"push"`
	App        AppConfig        `yaml:"app"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Retention  RetentionConfig  `yaml:"retention"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-API-Key"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access-token settings. Tokens are issued by the account
// service; this process only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"carealert"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// IngestConfig holds machine-to-machine ingestion settings.
type IngestConfig struct {
	APIKey string `yaml:"api_key" env:"FALL_DETECTION_API_KEY" env-required:"true"`
}

// EscalationConfig controls the unacknowledged fall alert SMS wave.
type EscalationConfig struct {
	DelayMinutes int `yaml:"delay_minutes" env:"FALL_ALERT_SMS_DELAY_MINUTES" env-default:"10"`
	BatchSize    int `yaml:"batch_size"    env:"ESCALATION_BATCH_SIZE"        env-default:"50"`
}

// Delay returns the escalation grace period.
func (c EscalationConfig) Delay() time.Duration {
	return time.Duration(c.DelayMinutes) * time.Minute
}

// SchedulerConfig controls the periodic reminder and escalation sweep.
type SchedulerConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"SCHEDULER_ENABLED"  env-default:"true"`
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m"`
	Timezone string        `yaml:"timezone" env:"SCHEDULER_TIMEZONE" env-default:"UTC"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// NotifyConfig holds fan-out settings.
type NotifyConfig struct {
	DispatchTimeout time.Duration `yaml:"dispatch_timeout" env:"NOTIFY_DISPATCH_TIMEOUT" env-default:"30s"`
}

// SMSConfig holds bulk SMS provider settings. An empty APIKey enables
// simulated mode.
type SMSConfig struct {
	APIKey  string        `yaml:"api_key"  env:"FAST2SMS_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"SMS_BASE_URL"     env-default:"https://www.fast2sms.com/dev/bulkV2"`
	Timeout time.Duration `yaml:"timeout"  env:"SMS_TIMEOUT"      env-default:"10s"`
}

// Simulated reports whether SMS sends are only logged.
func (c SMSConfig) Simulated() bool { return c.APIKey == "" }

// SMTPConfig holds outgoing mail settings. An empty Host disables email.
type SMTPConfig struct {
	Host     string        `yaml:"host"     env:"SMTP_HOST"`
	Port     int           `yaml:"port"     env:"SMTP_PORT"     env-default:"587"`
	Username string        `yaml:"username" env:"SMTP_USER"`
	Password string        `yaml:"password" env:"SMTP_PASS"`
	From     string        `yaml:"from"     env:"SMTP_FROM"     env-default:"CareAlert <no-reply@carealert.local>"`
	Timeout  time.Duration `yaml:"timeout"  env:"SMTP_TIMEOUT"  env-default:"15s"`
}

// Enabled reports whether an SMTP server is configured.
func (c SMTPConfig) Enabled() bool { return c.Host != "" }

// PushConfig holds Web Push (VAPID) and FCM settings.
type PushConfig struct {
	VAPIDPublicKey     string        `yaml:"vapid_public_key"     env:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey    string        `yaml:"vapid_private_key"    env:"VAPID_PRIVATE_KEY"`
	VAPIDSubject       string        `yaml:"vapid_subject"        env:"VAPID_SUBJECT"        env-default:"mailto:admin@carealert.local"`
	TTL                time.Duration `yaml:"ttl"                  env:"PUSH_TTL"             env-default:"24h"`
	FCMCredentialsFile string        `yaml:"fcm_credentials_file" env:"FCM_CREDENTIALS_FILE"`
}

// WebPushEnabled reports whether VAPID keys are configured.
func (c PushConfig) WebPushEnabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
}

// FCMEnabled reports whether Firebase credentials are configured.
func (c PushConfig) FCMEnabled() bool { return c.FCMCredentialsFile != "" }

// AppConfig holds settings about the public web application.
type AppConfig struct {
	URL string `yaml:"url" env:"APP_URL" env-default:"http://localhost:3000"`
}

// DashboardURL returns the absolute dashboard link used in messages.
func (c AppConfig) DashboardURL() string {
	return strings.TrimRight(c.URL, "/") + "/dashboard"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	IngestPerMinute int           `yaml:"ingest_per_minute" env:"RATE_LIMIT_INGEST_PER_MINUTE" env-default:"600"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// RetentionConfig controls cleanup jobs.
type RetentionConfig struct {
	NotificationLogDays int `yaml:"notification_log_days" env:"RETENTION_NOTIFICATION_LOG_DAYS" env-default:"90"`
}
