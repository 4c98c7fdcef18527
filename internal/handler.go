package internal

// Handler declares routes on a router.
//
//	type ConfirmationHandler struct{ svc *Service }
//
//	func (h *ConfirmationHandler) Routes(r internal.Router) {
//	    r.POST("/send-payment-confirmation", h.send)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc handles one request. A non-nil error is passed to the
// App's ErrorHandler unless the response was already written.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc. It may short-circuit by not calling next.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler turns a handler error into a response.
type ErrorHandler func(Context, error) error
