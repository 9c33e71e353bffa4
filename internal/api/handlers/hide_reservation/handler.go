package hide_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
	"github.com/fiestaspark/FP-ReservationService/internal/service/reservations"
)

const (
	msgInvalidID       = "identificador de reserva inválido"
	msgReservaNotFound = "reserva no encontrada"
	msgNotPending      = "la reserva ya no está pendiente"
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

// Handle DELETE /api/reservas/{reservaId}
// Резервация скрывается, а не удаляется: запись и компробант остаются
// для аудита, но пропадают из клиентских списков.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservaID, err := strconv.ParseInt(mux.Vars(r)["reservaId"], 10, 64)
	if err != nil || reservaID <= 0 {
		h.logger.Warn("DELETE /reservas/{id} - Invalid reserva id: %v", mux.Vars(r)["reservaId"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Hide(r.Context(), reservaID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservaNotFound):
			h.logger.Warn("DELETE /reservas/{id} - Reserva id=%d not found", reservaID)
			handlers.RespondNotFound(w, msgReservaNotFound)

		case errors.Is(err, reservations.ErrIllegalTransition):
			h.logger.Warn("DELETE /reservas/{id} - Reserva id=%d is not pending", reservaID)
			handlers.RespondConflict(w, msgNotPending)

		default:
			h.logger.Error("DELETE /reservas/{id} - Failed for reserva id=%d: %v", reservaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservas/{id} - Reserva id=%d hidden", reservaID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
