package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
	"github.com/fiestaspark/FP-ReservationService/internal/api/middleware"
	"github.com/fiestaspark/FP-ReservationService/internal/service/cart"
	"github.com/fiestaspark/FP-ReservationService/internal/service/cart/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgUnauthorized       = "se requiere autenticación"
	msgInvalidQuantity    = "la cantidad debe ser mayor a cero"
	msgInvalidTipo        = "tipo de posición inválido"
	msgItemNotFound       = "la posición del catálogo no existe"
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

// Handle POST /api/carrito/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carrito - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddItem(r.Context(), &models.AddItemRequest{
		ClienteID: session.UserID,
		Tipo:      req.Tipo,
		ItemID:    req.ItemID,
		Cantidad:  req.Cantidad,
	})
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			h.logger.Warn("POST /carrito - Invalid cantidad=%d: cliente=%d", req.Cantidad, session.UserID)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, cart.ErrInvalidItemKind):
			h.logger.Warn("POST /carrito - Invalid tipo=%s: cliente=%d", req.Tipo, session.UserID)
			handlers.RespondBadRequest(w, msgInvalidTipo)

		case errors.Is(err, cart.ErrItemNotFound):
			h.logger.Warn("POST /carrito - Catalog item tipo=%s id=%d not found: cliente=%d",
				req.Tipo, req.ItemID, session.UserID)
			handlers.RespondNotFound(w, msgItemNotFound)

		default:
			h.logger.Error("POST /carrito - Failed to add item: cliente=%d, error=%v", session.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /carrito - Item added: cliente=%d, tipo=%s, item=%d",
		session.UserID, req.Tipo, req.ItemID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
