package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/learnhub/paymail/internal"
)

// DefaultTimeout applies when Timeout is given a non-positive duration.
const DefaultTimeout = 30 * time.Second

// Timeout puts a deadline on the request context. Blocking work downstream
// (body reads, provider calls) observes it through the context and fails.
// If the deadline passed and nothing was written, a *TimeoutError is returned.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			c.SetContext(ctx)

			err := next(c)
			if err == nil && !c.Written() && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.LogWarn("request timeout", slog.Duration("timeout", timeout))
				return &TimeoutError{Duration: timeout}
			}
			return err
		}
	}
}
