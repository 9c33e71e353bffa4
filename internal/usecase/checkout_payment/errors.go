package checkout_payment

import "errors"

var (
	// ErrReservaNotFound возвращается, когда резервация не найдена
	ErrReservaNotFound = errors.New("checkout_payment: reserva not found")

	// ErrIllegalTransition возвращается, когда резервация уже не ожидает оплаты
	ErrIllegalTransition = errors.New("checkout_payment: reserva is not pending")

	// ErrInvalidMetodo возвращается при неизвестном способе оплаты
	ErrInvalidMetodo = errors.New("checkout_payment: invalid payment method")

	// ErrUnexpectedProof возвращается, когда компробант приложен к оплате наличными
	ErrUnexpectedProof = errors.New("checkout_payment: payment proof is not accepted for cash")

	// ErrUnsupportedMediaType возвращается, когда компробант не является
	// изображением поддерживаемого формата
	ErrUnsupportedMediaType = errors.New("checkout_payment: unsupported proof media type")

	// ErrProofTooLarge возвращается, когда компробант превышает лимит размера
	ErrProofTooLarge = errors.New("checkout_payment: proof file is too large")

	// ErrAccessDenied возвращается, когда резервация принадлежит другому клиенту
	ErrAccessDenied = errors.New("checkout_payment: reserva belongs to another client")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout_payment: internal error")
)
