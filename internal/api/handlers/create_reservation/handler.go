package create_reservation

import (
	"errors"
	"net/http"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
	"github.com/fiestaspark/FP-ReservationService/internal/api/middleware"
	createReservation "github.com/fiestaspark/FP-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgUnauthorized       = "se requiere autenticación"
	msgInvalidSlot        = "el horario no corresponde a la fecha del evento"
	msgSlotUnavailable    = "el horario seleccionado ya no tiene cupos"
	msgPastDate           = "la fecha del evento no puede estar en el pasado"
	msgEmptyCart          = "el carrito está vacío"
	msgItemNotFound       = "una de las posiciones del catálogo no existe"
	msgTotalMismatch      = "el total declarado no coincide con los detalles"
	msgCodigoTaken        = "el código de reserva ya está en uso"
	msgInvalidInput       = "datos de la reserva inválidos"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservas/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(session.UserID)
	if err != nil {
		h.logger.Warn("POST /reservas - Failed to parse fecha_evento=%s: %v", req.FechaEvento, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /reservas - Slot unavailable: cliente=%d, horario=%d", session.UserID, req.HorarioID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			h.logger.Warn("POST /reservas - Invalid slot: cliente=%d, horario=%d", session.UserID, req.HorarioID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservas - Past date: cliente=%d, fecha=%s", session.UserID, req.FechaEvento)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrEmptyCart):
			h.logger.Warn("POST /reservas - Empty cart: cliente=%d", session.UserID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, createReservation.ErrItemNotFound):
			h.logger.Warn("POST /reservas - Catalog item not found: cliente=%d", session.UserID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, createReservation.ErrTotalMismatch):
			h.logger.Warn("POST /reservas - Total mismatch: cliente=%d", session.UserID)
			handlers.RespondBadRequest(w, msgTotalMismatch)

		case errors.Is(err, createReservation.ErrCodigoTaken):
			h.logger.Warn("POST /reservas - Codigo already taken: cliente=%d", session.UserID)
			handlers.RespondConflict(w, msgCodigoTaken)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservas - Invalid input: cliente=%d, error=%v", session.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservas - Failed to create reserva: cliente=%d, error=%v", session.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Повтор запроса с тем же кодом возвращает прежнюю резервацию со статусом 200
	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}

	h.logger.Info("POST /reservas - Reserva created: id=%d, codigo=%s, cliente=%d",
		result.ID, result.Codigo, session.UserID)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
