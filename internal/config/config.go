// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/mail"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/learnhub/paymail/pkg/mailer"
	"github.com/learnhub/paymail/pkg/mailer/resend"
)

// ErrInvalid wraps every validation failure returned by Load.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full process configuration. The provider API key is not
// part of it; Mail.APIKeyEnv names the variable it is read from per request.
type Config struct {
	Server ServerConfig  `split_words:"true"`
	Log    LogConfig     `split_words:"true"`
	Mail   MailConfig    `split_words:"true"`
	Mailer mailer.Config `split_words:"true"`
	Resend resend.Config `split_words:"true"`
}

type ServerConfig struct {
	Addr            string        `envconfig:"SERVER_ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"20s"`
	MaxBodyBytes    int64         `envconfig:"SERVER_MAX_BODY_BYTES" default:"1048576"`
}

type LogConfig struct {
	Level             string `envconfig:"LOG_LEVEL" default:"info"`
	Service           string `envconfig:"LOG_SERVICE" default:"paymail"`
	SentryDSN         string `envconfig:"SENTRY_DSN"`
	SentryEnvironment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

type MailConfig struct {
	// Recipient receives every confirmation unless DeliverToCustomer is set.
	Recipient         string `envconfig:"MAIL_RECIPIENT" default:"delivered@resend.dev"`
	DeliverToCustomer bool   `envconfig:"MAIL_DELIVER_TO_CUSTOMER" default:"false"`
	ReplyTo           string `envconfig:"MAIL_REPLY_TO"`
	// DashboardURL adds a "view your course" button when set.
	DashboardURL string `envconfig:"MAIL_DASHBOARD_URL"`
	APIKeyEnv    string `envconfig:"RESEND_API_KEY_ENV" default:"RESEND_API_KEY"`
}

// Load reads the optional dotenv files (missing files are skipped; variables
// already set win) and then the environment.
func Load(dotenvFiles ...string) (*Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot check by type alone.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: SERVER_ADDR is empty", ErrInvalid)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", ErrInvalid)
	}
	if c.Mail.APIKeyEnv == "" {
		return fmt.Errorf("%w: RESEND_API_KEY_ENV is empty", ErrInvalid)
	}
	if _, err := mail.ParseAddress(c.Mail.Recipient); err != nil {
		return fmt.Errorf("%w: MAIL_RECIPIENT: %w", ErrInvalid, err)
	}
	if _, err := mail.ParseAddress(c.Resend.SenderEmail); err != nil {
		return fmt.Errorf("%w: RESEND_FROM_EMAIL: %w", ErrInvalid, err)
	}
	if c.Mail.ReplyTo != "" {
		if _, err := mail.ParseAddress(c.Mail.ReplyTo); err != nil {
			return fmt.Errorf("%w: MAIL_REPLY_TO: %w", ErrInvalid, err)
		}
	}
	for name, raw := range map[string]string{"RESEND_BASE_URL": c.Resend.BaseURL, "MAIL_DASHBOARD_URL": c.Mail.DashboardURL} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s must be an absolute URL", ErrInvalid, name)
		}
	}
	return nil
}
