package list_reservations

import (
	"context"

	"github.com/fiestaspark/FP-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	List(ctx context.Context, req *models.ListReservasRequest) (*models.ReservaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
