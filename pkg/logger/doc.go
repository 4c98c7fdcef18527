// Package logger builds the process-wide slog logger.
//
// Records are written as JSON to the configured output. Request-scoped values
// such as the request id are injected per call through [ContextExtractor]
// functions, so handlers only need to pass their context:
//
//	log := logger.New(logger.Config{Level: slog.LevelInfo, Service: "paymail"},
//		middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "sending payment confirmation")
//	// {"level":"INFO","msg":"sending payment confirmation","service":"paymail","request_id":"..."}
//
// When a Sentry DSN is configured, [New] additionally fans warnings and errors
// out to Sentry. Errors become Sentry issues; warnings are kept as logs.
// A missing DSN or a failed Sentry init falls back to JSON output only.
// Call [Flush] during shutdown so buffered Sentry events are delivered.
package logger
