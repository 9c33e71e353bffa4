package create_reservation

import (
	"context"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/events"
	"github.com/fiestaspark/FP-ReservationService/internal/integrations/catalogservice"
)

// ReservaRepository интерфейс репозитория резерваций
type ReservaRepository interface {
	Create(ctx context.Context, reserva *domain.Reserva) (*domain.Reserva, error)
	GetByCodigo(ctx context.Context, codigo string) (*domain.Reserva, error)
}

// SlotRepository интерфейс репозитория слотов расписания
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Horario, error)
	DecrementCapacity(ctx context.Context, id int64) error
}

// CartStore интерфейс хранилища корзин
type CartStore interface {
	Get(ctx context.Context, clienteID int64) (*domain.Cart, error)
	Delete(ctx context.Context, clienteID int64) error
}

// CatalogClient интерфейс клиента сервиса каталога
type CatalogClient interface {
	GetItem(ctx context.Context, tipo domain.TipoItem, id int64) (*catalogservice.Item, error)
}

// EventPublisher интерфейс издателя событий жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, queue string, event events.ReservaEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
