package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,       default=8000"`
	Env        string `env:"ENV,        default=development"`
	LogLevel   string `env:"LOG_LEVEL,  default=info"`
	LogPretty  bool   `env:"LOG_PRETTY, default=false"`
	CORSOrigin string `env:"CORS_ORIGIN, default=*"`
	BodyLimit  string `env:"BODY_LIMIT, default=16K"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Token    TokenConfig
	Cookie   CookieConfig
	Mail     MailConfig
	Reminder ReminderConfig
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGODB_DB,  default=birthdays"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type TokenConfig struct {
	AccessSecret  string        `env:"ACCESS_TOKEN_SECRET,  required"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_EXPIRY,  default=24h"`
	RefreshSecret string        `env:"REFRESH_TOKEN_SECRET, required"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_EXPIRY, default=240h"`
}

type CookieConfig struct {
	Secure bool `env:"COOKIE_SECURE, default=true"`
}

// MailConfig describes the account used for reminders. Service is a
// well-known SMTP provider name ("gmail", "outlook", ...); Host overrides it.
// When ResendAPIKey is set, mail goes through the Resend HTTP API instead.
type MailConfig struct {
	Service  string `env:"EMAIL_SERVICE"`
	Host     string `env:"EMAIL_HOST"`
	Port     int    `env:"EMAIL_PORT, default=587"`
	User     string `env:"EMAIL_USER"`
	Password string `env:"EMAIL_PASSWORD"`
	From     string `env:"EMAIL_FROM"`

	ResendAPIKey string `env:"EMAIL_RESEND_API_KEY"`
}

type ReminderConfig struct {
	Schedule string        `env:"REMINDER_SCHEDULE, default=0 0 * * *"`
	Timezone string        `env:"REMINDER_TIMEZONE, default=UTC"`
	Workers  int           `env:"REMINDER_WORKERS,  default=4"`
	Timeout  time.Duration `env:"REMINDER_TIMEOUT,  default=10m"`
}

// Sender is the fixed identity reminders are sent from.
func (m MailConfig) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.User
}

// Addr is the host:port pair the HTTP server binds to.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Token.AccessSecret == cfg.Token.RefreshSecret {
		return nil, fmt.Errorf("config: ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
	}
	return &cfg, nil
}
