package remove_cart_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
	"github.com/fiestaspark/FP-ReservationService/internal/api/middleware"
	"github.com/fiestaspark/FP-ReservationService/internal/service/cart"
)

const (
	msgInvalidID     = "identificador de línea inválido"
	msgUnauthorized  = "se requiere autenticación"
	msgLineNotFound  = "la línea del carrito no existe"
)

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

// Handle DELETE /api/carrito/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	itemID, err := strconv.ParseInt(mux.Vars(r)["itemId"], 10, 64)
	if err != nil || itemID <= 0 {
		h.logger.Warn("DELETE /carrito/items/{id} - Invalid item id: %v", mux.Vars(r)["itemId"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.RemoveItem(r.Context(), session.UserID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrItemNotFound):
			h.logger.Warn("DELETE /carrito/items/{id} - Line id=%d not found: cliente=%d", itemID, session.UserID)
			handlers.RespondNotFound(w, msgLineNotFound)

		default:
			h.logger.Error("DELETE /carrito/items/{id} - Failed: cliente=%d, error=%v", session.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /carrito/items/{id} - Line id=%d removed: cliente=%d", itemID, session.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
