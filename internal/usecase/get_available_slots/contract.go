package get_available_slots

import (
	"context"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов расписания
type SlotRepository interface {
	GetByDate(ctx context.Context, fecha time.Time) ([]domain.Horario, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
