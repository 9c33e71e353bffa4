package get_cart

import (
	"net/http"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
	"github.com/fiestaspark/FP-ReservationService/internal/api/middleware"
)

const msgUnauthorized = "se requiere autenticación"

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/carrito/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetCart(r.Context(), session.UserID)
	if err != nil {
		h.logger.Error("GET /carrito - Failed to get cart: cliente=%d, error=%v", session.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /carrito - Returned %d lines to cliente=%d", len(result.Items), session.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
