package get_banks

import (
	"net/http"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
)

type Handler struct {
	service BanksService
	logger  Logger
}

func NewHandler(service BanksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bancos/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /bancos - Failed to list bank accounts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bancos - Returned %d bank accounts", len(result.Cuentas))
	handlers.RespondJSON(w, http.StatusOK, result)
}
