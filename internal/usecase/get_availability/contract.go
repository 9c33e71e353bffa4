package get_availability

import (
	"context"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов расписания
type SlotRepository interface {
	GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.Horario, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
