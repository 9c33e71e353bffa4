package cart

import (
	"context"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/internal/integrations/catalogservice"
)

// CartStore интерфейс хранилища корзин
type CartStore interface {
	Get(ctx context.Context, clienteID int64) (*domain.Cart, error)
	Save(ctx context.Context, clienteID int64, cart *domain.Cart) error
	Delete(ctx context.Context, clienteID int64) error
}

// CatalogClient интерфейс клиента сервиса каталога
type CatalogClient interface {
	GetItem(ctx context.Context, tipo domain.TipoItem, id int64) (*catalogservice.Item, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
