package reservations

import (
	"context"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/events"
)

// ReservaRepository интерфейс репозитория резерваций
type ReservaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reserva, error)
	GetByCodigo(ctx context.Context, codigo string) (*domain.Reserva, error)
	ListWithFilter(ctx context.Context, filter domain.ReservasFilter) ([]*domain.Reserva, error)
	Approve(ctx context.Context, id int64, transaccionID string) error
	UpdateEstado(ctx context.Context, id int64, estado domain.ReservaStatus) error
}

// SlotRepository интерфейс репозитория слотов расписания
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Horario, error)
	IncrementCapacity(ctx context.Context, id int64) error
}

// EventPublisher интерфейс издателя событий жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, queue string, event events.ReservaEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
