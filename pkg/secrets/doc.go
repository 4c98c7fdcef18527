// Package secrets resolves named secrets at call time.
//
// Handlers receive a Provider at construction and look secrets up on every
// invocation instead of reading process-wide state, so rotating a key in the
// environment takes effect without a restart and tests can substitute values
// without touching os.Environ.
//
//	p := secrets.Env()
//	key, err := secrets.Require(ctx, p, "RESEND_API_KEY")
//	if errors.Is(err, secrets.ErrNotFound) {
//		// not configured
//	}
package secrets
