package annul_reservation

import (
	"context"

	"github.com/fiestaspark/FP-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	Annul(ctx context.Context, id int64) (*models.ReservaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
