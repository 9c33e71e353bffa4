package get_availability_calendar

import (
	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	getAvailability "github.com/fiestaspark/FP-ReservationService/internal/usecase/get_availability"
)

// CalendarDay день календаря в формате виджета fullcalendar:
// start - дата, status - цвет подсветки дня
type CalendarDay struct {
	Start  string `json:"start"`  // "2026-03-15"
	Status string `json:"status"` // verde | amarillo | rojo | gris
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) []CalendarDay {
	days := make([]CalendarDay, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = CalendarDay{
			Start:  d.Fecha.Format(domain.DateFormat),
			Status: d.Color,
		}
	}
	return days
}
