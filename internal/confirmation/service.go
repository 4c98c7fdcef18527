package confirmation

import (
	"context"
	"fmt"

	"github.com/learnhub/paymail/pkg/health"
	"github.com/learnhub/paymail/pkg/mailer"
	"github.com/learnhub/paymail/pkg/secrets"
	"github.com/learnhub/paymail/templates"
)

// SenderFactory builds a provider sender bound to one API key.
type SenderFactory func(apiKey string) mailer.Sender

// Config controls addressing and rendering.
type Config struct {
	// APIKeySecret names the secret holding the provider API key.
	APIKeySecret string

	// Recipient receives every confirmation unless DeliverToCustomer is set
	// and the request carries an email.
	Recipient         string
	DeliverToCustomer bool

	ReplyTo      string
	DashboardURL string

	Mailer mailer.Config
}

// Service renders and sends confirmations.
type Service struct {
	secrets   secrets.Provider
	newSender SenderFactory
	renderer  *mailer.Renderer
	config    Config
}

// NewService wires a Service. The API key is resolved through p on every
// Send, so rotating it needs no restart.
func NewService(p secrets.Provider, newSender SenderFactory, renderer *mailer.Renderer, cfg Config) *Service {
	return &Service{
		secrets:   p,
		newSender: newSender,
		renderer:  renderer,
		config:    cfg,
	}
}

// Send delivers one confirmation and returns the provider's message id.
func (s *Service) Send(ctx context.Context, req Request) (string, error) {
	apiKey, err := secrets.Require(ctx, s.secrets, s.config.APIKeySecret)
	if err != nil {
		return "", &ConfigurationError{Secret: s.config.APIKeySecret, Err: err}
	}

	data := newEmailData(req, s.config.DashboardURL)
	m := mailer.New(s.newSender(apiKey), s.renderer, s.config.Mailer)

	id, err := m.Send(ctx, mailer.SendParams{
		To:       s.recipient(req),
		Template: templates.PaymentConfirmation,
		Subject:  data.subject(),
		ReplyTo:  s.config.ReplyTo,
		Data:     data,
		Tags:     mailer.Tags{"category": "payment_confirmation"},
	})
	if err != nil {
		return "", fmt.Errorf("send payment confirmation: %w", err)
	}
	return id, nil
}

func (s *Service) recipient(req Request) string {
	if s.config.DeliverToCustomer && req.Email != "" {
		return req.Email
	}
	return s.config.Recipient
}

// Healthcheck reports whether the API key currently resolves.
func (s *Service) Healthcheck() health.CheckFunc {
	return func(ctx context.Context) error {
		_, err := secrets.Require(ctx, s.secrets, s.config.APIKeySecret)
		return err
	}
}
