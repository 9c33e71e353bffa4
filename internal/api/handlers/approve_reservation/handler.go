package approve_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
	"github.com/fiestaspark/FP-ReservationService/internal/service/reservations"
)

const (
	msgInvalidID          = "identificador de reserva inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgReservaNotFound    = "reserva no encontrada"
	msgNotPending         = "la reserva ya no está pendiente"
	msgMissingTransaccion = "se requiere la referencia de la transacción bancaria"
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

// Handle PATCH /api/reservas/{reservaId}/aprobar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservaID, err := strconv.ParseInt(mux.Vars(r)["reservaId"], 10, 64)
	if err != nil || reservaID <= 0 {
		h.logger.Warn("PATCH /reservas/{id}/aprobar - Invalid reserva id: %v", mux.Vars(r)["reservaId"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req ApproveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservas/{id}/aprobar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Approve(r.Context(), reservaID, req.TransaccionID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrMissingTransactionRef):
			h.logger.Warn("PATCH /reservas/{id}/aprobar - Missing transaccion_id for reserva id=%d", reservaID)
			handlers.RespondUnprocessable(w, msgMissingTransaccion)

		case errors.Is(err, reservations.ErrReservaNotFound):
			h.logger.Warn("PATCH /reservas/{id}/aprobar - Reserva id=%d not found", reservaID)
			handlers.RespondNotFound(w, msgReservaNotFound)

		case errors.Is(err, reservations.ErrIllegalTransition):
			h.logger.Warn("PATCH /reservas/{id}/aprobar - Reserva id=%d is not pending", reservaID)
			handlers.RespondConflict(w, msgNotPending)

		default:
			h.logger.Error("PATCH /reservas/{id}/aprobar - Failed for reserva id=%d: %v", reservaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservas/{id}/aprobar - Reserva id=%d approved", reservaID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
