package get_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
	"github.com/fiestaspark/FP-ReservationService/internal/api/middleware"
	"github.com/fiestaspark/FP-ReservationService/internal/service/reservations"
)

const (
	msgInvalidID       = "identificador de reserva inválido"
	msgUnauthorized    = "se requiere autenticación"
	msgAccessDenied    = "no tiene acceso a esta reserva"
	msgReservaNotFound = "reserva no encontrada"
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

// Handle GET /api/reservas/{reservaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservaID, err := strconv.ParseInt(mux.Vars(r)["reservaId"], 10, 64)
	if err != nil || reservaID <= 0 {
		h.logger.Warn("GET /reservas/{id} - Invalid reserva id: %v", mux.Vars(r)["reservaId"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), reservaID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservaNotFound):
			h.logger.Warn("GET /reservas/{id} - Reserva id=%d not found", reservaID)
			handlers.RespondNotFound(w, msgReservaNotFound)

		default:
			h.logger.Error("GET /reservas/{id} - Failed to get reserva id=%d: %v", reservaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Клиент видит только свои резервации, персонал - любые
	if result.ClienteID != session.UserID && session.Role != middleware.RoleStaff {
		h.logger.Warn("GET /reservas/{id} - Access denied: user=%d, reserva=%d", session.UserID, reservaID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	h.logger.Info("GET /reservas/{id} - Returned reserva id=%d to user=%d", reservaID, session.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
