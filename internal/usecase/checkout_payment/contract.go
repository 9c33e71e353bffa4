package checkout_payment

import (
	"context"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// ReservaRepository интерфейс репозитория резерваций
type ReservaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reserva, error)
	SetPago(ctx context.Context, id int64, metodo domain.MetodoPago, comprobante *string) error
}

// ProofStore интерфейс хранилища компробантов оплаты
type ProofStore interface {
	Save(codigo string, contentType string, data []byte) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
