package checkout_payment

import (
	"context"

	checkoutPayment "github.com/fiestaspark/FP-ReservationService/internal/usecase/checkout_payment"
)

type CheckoutPaymentUseCase interface {
	Execute(ctx context.Context, req *checkoutPayment.Request) (*checkoutPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
