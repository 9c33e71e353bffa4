package list_reservations

import (
	"errors"
	"net/http"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
	"github.com/fiestaspark/FP-ReservationService/internal/api/middleware"
	"github.com/fiestaspark/FP-ReservationService/internal/service/reservations"
	"github.com/fiestaspark/FP-ReservationService/internal/service/reservations/models"
)

const (
	msgUnauthorized  = "se requiere autenticación"
	msgInvalidEstado = "estado de reserva inválido"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/reservas/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &models.ListReservasRequest{}

	// Клиент видит только свои резервации, персонал - все
	if session.Role != middleware.RoleStaff {
		clienteID := session.UserID
		req.ClienteID = &clienteID
	}

	if estado := r.URL.Query().Get("estado"); estado != "" {
		req.Estado = &estado
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("GET /reservas - Invalid estado filter: %v", req.Estado)
			handlers.RespondBadRequest(w, msgInvalidEstado)

		default:
			h.logger.Error("GET /reservas - Failed to list reservas for user=%d: %v", session.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservas - Returned %d reservas to user=%d", len(result.Reservas), session.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
