package get_banks

import (
	"context"

	"github.com/fiestaspark/FP-ReservationService/internal/service/banks/models"
)

type BanksService interface {
	ListActive(ctx context.Context) (*models.CuentaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
