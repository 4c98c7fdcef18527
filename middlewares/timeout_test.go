package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/paymail/internal"
	"github.com/learnhub/paymail/middlewares"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("sets a deadline on the request context", func(t *testing.T) {
		t.Parallel()
		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

		err := middlewares.Timeout(time.Minute)(func(c internal.Context) error {
			deadline, ok := c.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return nil
		})(c)
		assert.NoError(t, err)
	})

	t.Run("expired without response returns TimeoutError", func(t *testing.T) {
		t.Parallel()
		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

		err := middlewares.Timeout(10 * time.Millisecond)(func(c internal.Context) error {
			<-c.Done()
			return nil
		})(c)

		te, ok := middlewares.AsTimeoutError(err)
		require.True(t, ok)
		assert.Equal(t, 10*time.Millisecond, te.Duration)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("handler error wins", func(t *testing.T) {
		t.Parallel()
		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
		want := errors.New("provider call: context deadline exceeded")

		err := middlewares.Timeout(10 * time.Millisecond)(func(c internal.Context) error {
			<-c.Done()
			return want
		})(c)
		assert.Same(t, want, err)
	})

	t.Run("written response is left alone", func(t *testing.T) {
		t.Parallel()
		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

		err := middlewares.Timeout(10 * time.Millisecond)(func(c internal.Context) error {
			<-c.Done()
			return c.NoContent(http.StatusOK)
		})(c)
		assert.NoError(t, err)
	})

	t.Run("non-positive uses default", func(t *testing.T) {
		t.Parallel()
		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

		err := middlewares.Timeout(0)(func(c internal.Context) error {
			deadline, ok := c.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(middlewares.DefaultTimeout), deadline, 5*time.Second)
			return nil
		})(c)
		assert.NoError(t, err)
	})
}

func TestTimeout_InApp(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithMiddleware(middlewares.Timeout(20*time.Millisecond)),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			return c.JSON(http.StatusInternalServerError, map[string]string{"details": err.Error()})
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.POST("/", func(c internal.Context) error {
				<-c.Done()
				return c.Err()
			})
		})),
	)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"details":"context deadline exceeded"}`, rec.Body.String())
}
