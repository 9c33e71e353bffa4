package banks

import (
	"context"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// BankRepository интерфейс репозитория банковских счетов
type BankRepository interface {
	ListActive(ctx context.Context) ([]domain.CuentaBancaria, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
