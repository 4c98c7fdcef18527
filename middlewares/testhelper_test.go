package middlewares_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/learnhub/paymail/internal"
	"github.com/learnhub/paymail/pkg/logger"
)

// testContext is a minimal internal.Context for exercising one middleware
// without an App.
type testContext struct {
	response http.ResponseWriter
	request  *http.Request
	written  bool
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{response: w, request: r}
}

func (c *testContext) Request() *http.Request            { return c.request }
func (c *testContext) Response() http.ResponseWriter     { return c.response }
func (c *testContext) Context() context.Context          { return c.request.Context() }
func (c *testContext) SetContext(ctx context.Context)    { c.request = c.request.WithContext(ctx) }
func (c *testContext) Param(string) string               { return "" }
func (c *testContext) Header(name string) string         { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string)      { c.response.Header().Set(name, value) }
func (c *testContext) BindJSON(v any) error              { return json.NewDecoder(c.request.Body).Decode(v) }
func (c *testContext) Written() bool                     { return c.written }
func (c *testContext) Logger() *slog.Logger              { return logger.NewNope() }
func (c *testContext) LogDebug(msg string, attrs ...any) {}
func (c *testContext) LogInfo(msg string, attrs ...any)  {}
func (c *testContext) LogWarn(msg string, attrs ...any)  {}
func (c *testContext) LogError(msg string, attrs ...any) {}

func (c *testContext) JSON(code int, v any) error {
	c.written = true
	c.response.Header().Set("Content-Type", "application/json")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *testContext) NoContent(code int) error {
	c.written = true
	c.response.WriteHeader(code)
	return nil
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

func (c *testContext) Set(key, value any) {
	c.SetContext(context.WithValue(c.request.Context(), key, value))
}

func (c *testContext) Get(key any) any { return c.request.Context().Value(key) }

func (c *testContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *testContext) Err() error                  { return c.request.Context().Err() }
func (c *testContext) Value(key any) any           { return c.request.Context().Value(key) }

var _ internal.Context = (*testContext)(nil)
