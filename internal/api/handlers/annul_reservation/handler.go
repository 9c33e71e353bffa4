package annul_reservation

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

// Handle PATCH /api/reservas/{reservaId}/anular
// Аннулирование выполняет только персонал; клиентские отмены идут через
// отдельный процесс запросов на отмену.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservaID, err := strconv.ParseInt(mux.Vars(r)["reservaId"], 10, 64)
	if err != nil || reservaID <= 0 {
		h.logger.Warn("PATCH /reservas/{id}/anular - Invalid reserva id: %v", mux.Vars(r)["reservaId"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.Annul(r.Context(), reservaID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservaNotFound):
			h.logger.Warn("PATCH /reservas/{id}/anular - Reserva id=%d not found", reservaID)
			handlers.RespondNotFound(w, msgReservaNotFound)

		case errors.Is(err, reservations.ErrIllegalTransition):
			h.logger.Warn("PATCH /reservas/{id}/anular - Reserva id=%d is not pending", reservaID)
			handlers.RespondConflict(w, msgNotPending)

		default:
			h.logger.Error("PATCH /reservas/{id}/anular - Failed for reserva id=%d: %v", reservaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservas/{id}/anular - Reserva id=%d annulled", reservaID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
