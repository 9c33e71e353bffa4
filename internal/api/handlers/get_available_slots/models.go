package get_available_slots

import (
	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	getAvailableSlots "github.com/fiestaspark/FP-ReservationService/internal/usecase/get_available_slots"
)

// SlotResponse слот расписания с остатком мест
type SlotResponse struct {
	ID             int64  `json:"id"`
	HoraInicio     string `json:"hora_inicio"`
	HoraFin        string `json:"hora_fin"`
	CuposTotales   int    `json:"cupos_totales"`
	CuposRestantes int    `json:"cupos_restantes"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Fecha    string         `json:"fecha"`
	Horarios []SlotResponse `json:"horarios"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	horarios := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		horarios[i] = SlotResponse{
			ID:             s.ID,
			HoraInicio:     s.HoraInicio,
			HoraFin:        s.HoraFin,
			CuposTotales:   s.CuposTotales,
			CuposRestantes: s.CuposRestantes,
		}
	}

	return &SlotsResponse{
		Fecha:    resp.Fecha.Format(domain.DateFormat),
		Horarios: horarios,
	}
}
