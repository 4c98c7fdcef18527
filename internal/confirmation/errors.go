package confirmation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/learnhub/paymail/internal"
	"github.com/learnhub/paymail/middlewares"
	"github.com/learnhub/paymail/pkg/mailer"
)

// Client-facing messages.
const (
	SuccessMessage = "Payment confirmation email sent successfully"
	FailureMessage = "Failed to send payment confirmation email"
	NotConfigured  = "Email service not configured"
)

// ErrNullPayload is returned when the body is the JSON literal null.
var ErrNullPayload = errors.New("bind json: payload is null")

// ConfigurationError means the provider API key could not be resolved.
type ConfigurationError struct {
	Err    error
	Secret string
}

func (e *ConfigurationError) Error() string {
	return NotConfigured
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is the App's single error boundary. Routing errors (404, 405)
// keep their status; everything else becomes a 500 with the cause in details.
func ErrorHandler(c internal.Context, err error) error {
	if httpErr := internal.AsHTTPError(err); httpErr != nil && httpErr.Code < http.StatusInternalServerError {
		return c.JSON(httpErr.Code, ErrorResponse{Error: httpErr.Message})
	}

	attrs := []any{slog.String("error", err.Error()), slog.String("kind", errorKind(c, err))}
	if pe, ok := mailer.AsProviderError(err); ok {
		attrs = append(attrs, slog.Int("provider_status", pe.StatusCode))
	}
	c.LogError("payment confirmation failed", attrs...)

	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   FailureMessage,
		Details: err.Error(),
	})
}

func errorKind(ctx context.Context, err error) string {
	var cfgErr *ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		return "configuration"
	case errors.Is(err, mailer.ErrRenderFailed), errors.Is(err, mailer.ErrTemplateNotFound), errors.Is(err, mailer.ErrLayoutNotFound):
		return "render"
	}
	if _, ok := mailer.AsProviderError(err); ok {
		return "provider"
	}
	if _, ok := middlewares.AsPanicError(err); ok {
		return "panic"
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "timeout"
	}
	return "unexpected"
}
