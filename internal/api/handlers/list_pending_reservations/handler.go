package list_pending_reservations

import (
	"net/http"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
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

// Handle GET /api/admin/reservas/pendientes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPending(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/reservas/pendientes - Failed to list pending reservas: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reservas/pendientes - Returned %d pending reservas", len(result.Reservas))
	handlers.RespondJSON(w, http.StatusOK, result)
}
