package checkout_payment

import checkoutPayment "github.com/fiestaspark/FP-ReservationService/internal/usecase/checkout_payment"

// CheckoutRequest JSON тело оформления оплаты (путь без компробанта)
type CheckoutRequest struct {
	MetodoPago string `json:"metodo_pago"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	ReservaID       int64   `json:"reserva_id"`
	CodigoReserva   string  `json:"codigo_reserva"`
	MetodoPago      string  `json:"metodo_pago"`
	ComprobantePago *string `json:"comprobante_pago,omitempty"`
	Estado          string  `json:"estado"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkoutPayment.Response) *CheckoutResponse {
	return &CheckoutResponse{
		ReservaID:       resp.ReservaID,
		CodigoReserva:   resp.Codigo,
		MetodoPago:      resp.Metodo,
		ComprobantePago: resp.ComprobantePago,
		Estado:          resp.Estado,
	}
}
