package resend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v3"

	"github.com/learnhub/paymail/pkg/mailer"
)

// ProviderName is reported in *mailer.ProviderError.
const ProviderName = "Resend"

const defaultTimeout = 15 * time.Second

// ErrEmptyAPIKey is returned by Send when the sender was built without a key.
var ErrEmptyAPIKey = errors.New("resend: api key is empty")

// Sender implements mailer.Sender using the Resend API.
// A Sender is bound to one API key; build a new one when the key changes.
type Sender struct {
	client *resend.Client
	config Config
}

// Option configures a Sender.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the underlying HTTP client. Its transport is wrapped, not replaced.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// New creates a new Resend sender.
func New(cfg Config, opts ...Option) *Sender {
	o := &options{httpClient: &http.Client{Timeout: defaultTimeout}}
	for _, opt := range opts {
		opt(o)
	}

	base := o.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	hc := *o.httpClient
	hc.Transport = &recordingTransport{base: base}

	client := resend.NewCustomClient(&hc, cfg.APIKey)
	if u, ok := parseBaseURL(cfg.BaseURL); ok {
		client.BaseURL = u
	}

	return &Sender{
		client: client,
		config: cfg,
	}
}

// parseBaseURL returns raw with a trailing slash so the client resolves
// "emails" below any path prefix, e.g. a gateway mounted at /resend.
func parseBaseURL(raw string) (*url.URL, bool) {
	if raw == "" {
		return nil, false
	}
	u, err := url.Parse(strings.TrimRight(raw, "/") + "/")
	if err != nil || u.Host == "" {
		return nil, false
	}
	return u, true
}

// NewFactory returns a constructor that binds cfg and opts to a given API key.
// It suits callers that resolve the key per request.
func NewFactory(cfg Config, opts ...Option) func(apiKey string) mailer.Sender {
	return func(apiKey string) mailer.Sender {
		c := cfg
		c.APIKey = apiKey
		return New(c, opts...)
	}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if s.config.APIKey == "" {
		return "", ErrEmptyAPIKey
	}

	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}
	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}

	ctx, ex := withExchange(ctx)
	resp, err := s.client.Emails.SendWithContext(ctx, req)

	// The library flattens provider errors into a message; the recorded
	// exchange keeps the status code and raw body.
	if ex.status != 0 && (ex.status < http.StatusOK || ex.status >= http.StatusMultipleChoices) {
		return "", &mailer.ProviderError{
			Provider:   ProviderName,
			StatusCode: ex.status,
			Body:       string(ex.body),
		}
	}
	if err != nil {
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}
	if resp == nil {
		return "", errors.New("resend: empty response")
	}

	return resp.Id, nil
}

func convertTags(tags mailer.Tags) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		result = append(result, resend.Tag{
			Name:  name,
			Value: tagValue(value),
		})
	}
	return result
}

// tagValue converts any value to a string for Resend's tag API.
// Presence-only tags (struct{}{}) become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
