package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/paymail/internal"
	"github.com/learnhub/paymail/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	run := func(mw internal.Middleware, h internal.HandlerFunc) error {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		return mw(h)(newTestContext(httptest.NewRecorder(), req))
	}

	t.Run("panic becomes PanicError", func(t *testing.T) {
		t.Parallel()
		err := run(middlewares.Recover(), func(internal.Context) error { panic("render exploded") })

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		assert.Equal(t, "render exploded", pe.Value)
		assert.NotEmpty(t, pe.Stack)
		assert.Equal(t, "panic: render exploded", err.Error())
	})

	t.Run("error panic value unwraps", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("nil map")
		err := run(middlewares.Recover(), func(internal.Context) error { panic(cause) })

		assert.ErrorIs(t, err, cause)
	})

	t.Run("stack capture can be disabled", func(t *testing.T) {
		t.Parallel()
		err := run(middlewares.Recover(middlewares.WithRecoverDisableStack()), func(internal.Context) error { panic(1) })

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		assert.Nil(t, pe.Stack)
	})

	t.Run("stack size is capped", func(t *testing.T) {
		t.Parallel()
		err := run(middlewares.Recover(middlewares.WithRecoverStackSize(64)), func(internal.Context) error { panic("x") })

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		assert.LessOrEqual(t, len(pe.Stack), 64)
	})

	t.Run("passes errors through", func(t *testing.T) {
		t.Parallel()
		want := errors.New("plain")
		err := run(middlewares.Recover(), func(internal.Context) error { return want })

		assert.Same(t, want, err)
	})
}

func TestRecover_InApp(t *testing.T) {
	t.Parallel()

	var handled error
	app := internal.New(
		internal.WithMiddleware(middlewares.Recover()),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			handled = err
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(internal.Context) error { panic("boom") })
		})),
	)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"panic: boom"}`, rec.Body.String())
	_, ok := middlewares.AsPanicError(handled)
	assert.True(t, ok)
}

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }
