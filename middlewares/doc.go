// Package middlewares holds the global HTTP middleware for the App.
//
// Recommended order, outermost first:
//
//	internal.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.Recover(),
//	    middlewares.CORS(),
//	    middlewares.Timeout(cfg.RequestTimeout),
//	)
//
// RequestID goes first so every later log line carries the id; pair it with
// RequestIDExtractor when building the logger. Recover and Timeout return
// typed errors (*PanicError, *TimeoutError) to the App's ErrorHandler rather
// than writing responses themselves. CORS sits outside Timeout so preflight
// replies never wait on a deadline and error responses still carry the CORS
// header set.
package middlewares
