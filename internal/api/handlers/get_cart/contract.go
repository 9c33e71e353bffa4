package get_cart

import (
	"context"

	"github.com/fiestaspark/FP-ReservationService/internal/service/cart/models"
)

type CartService interface {
	GetCart(ctx context.Context, clienteID int64) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
