package approve_reservation

import (
	"context"

	"github.com/fiestaspark/FP-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	Approve(ctx context.Context, id int64, transaccionID string) (*models.ReservaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
