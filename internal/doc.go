// Package internal is the HTTP application core: a chi-backed App, the
// Router and Handler types, the request Context and the graceful runtime.
//
// # Application
//
//	app := internal.New(
//	    internal.WithCustomLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover(), middlewares.CORS()),
//	    internal.WithErrorHandler(confirmation.ErrorHandler),
//	    internal.WithHandlers(confirmation.NewHandler(svc)),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("resend_api_key", check)),
//	)
//	err := app.Run(":8080", internal.Logger(log), internal.ShutdownHook(logger.Flush))
//
// Global middleware wraps the whole router, so it also runs for unmatched
// paths and methods. That is what lets CORS answer OPTIONS on any path.
//
// # Errors
//
// A HandlerFunc returns an error instead of writing a failure response.
// The App routes every such error to one ErrorHandler, unless the handler
// already wrote something. Without an ErrorHandler the client gets a bare
// status text, using the code of an *HTTPError when one is in the chain.
//
// # Context
//
// Context embeds context.Context and delegates to the request context, so
// it can be handed directly to outbound calls. Values stored with Set are
// visible to logger context extractors, which is how request ids end up in
// every log line.
package internal
