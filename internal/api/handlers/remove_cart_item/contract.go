package remove_cart_item

import (
	"context"

	"github.com/fiestaspark/FP-ReservationService/internal/service/cart/models"
)

type CartService interface {
	RemoveItem(ctx context.Context, clienteID int64, itemID int64) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
