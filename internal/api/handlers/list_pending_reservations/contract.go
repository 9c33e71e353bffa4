package list_pending_reservations

import (
	"context"

	"github.com/fiestaspark/FP-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	ListPending(ctx context.Context) (*models.ReservaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
