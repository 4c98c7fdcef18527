package confirmation

import (
	"log/slog"
	"net/http"

	"github.com/learnhub/paymail/internal"
)

// Handler exposes the Service over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes registers the endpoint at the root and under a descriptive alias.
// OPTIONS is answered by the CORS middleware before routing.
func (h *Handler) Routes(r internal.Router) {
	r.POST("/", h.send)
	r.POST("/send-payment-confirmation", h.send)
}

func (h *Handler) send(c internal.Context) error {
	c.LogInfo("sending payment confirmation", slog.String("path", c.Request().URL.Path))

	var req *Request
	if err := c.BindJSON(&req); err != nil {
		return err
	}
	if req == nil {
		return ErrNullPayload
	}

	id, err := h.service.Send(c, *req)
	if err != nil {
		return err
	}

	c.LogInfo("payment confirmation sent", slog.String("email_id", id), slog.String("payment_id", req.PaymentID))
	return c.JSON(http.StatusOK, Response{Message: SuccessMessage, EmailID: id})
}

// NotFound answers unmatched paths through ErrorHandler.
func NotFound(internal.Context) error {
	return internal.ErrNotFound("")
}

// MethodNotAllowed answers known paths hit with another method.
func MethodNotAllowed(internal.Context) error {
	return internal.ErrMethodNotAllowed("")
}
