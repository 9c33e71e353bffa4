package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	getAvailableSlots "github.com/fiestaspark/FP-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgMissingFecha = "el parámetro fecha es obligatorio"
	msgInvalidFecha = "formato de fecha inválido, se espera YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/horarios/disponibles/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("fecha")
	if raw == "" {
		h.logger.Warn("GET /horarios/disponibles - Missing fecha parameter")
		handlers.RespondBadRequest(w, msgMissingFecha)
		return
	}

	fecha, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /horarios/disponibles - Invalid fecha=%s", raw)
		handlers.RespondBadRequest(w, msgInvalidFecha)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Fecha: fecha})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /horarios/disponibles - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFecha)

		default:
			h.logger.Error("GET /horarios/disponibles - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /horarios/disponibles - Returned %d slots for fecha=%s", len(result.Slots), raw)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
