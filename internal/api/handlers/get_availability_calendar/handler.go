package get_availability_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	getAvailability "github.com/fiestaspark/FP-ReservationService/internal/usecase/get_availability"
)

const (
	msgInvalidDate  = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidRange = "rango de fechas inválido"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/fiesta/disponibilidad-calendario/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailability.Request{}

	if raw := r.URL.Query().Get("desde"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /fiesta/disponibilidad-calendario - Invalid desde=%s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.From = &from
	}

	if raw := r.URL.Query().Get("hasta"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /fiesta/disponibilidad-calendario - Invalid hasta=%s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.To = &to
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidRange):
			h.logger.Warn("GET /fiesta/disponibilidad-calendario - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /fiesta/disponibilidad-calendario - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fiesta/disponibilidad-calendario - Returned %d days", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
