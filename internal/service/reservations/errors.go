package reservations

import "errors"

var (
	// ErrReservaNotFound возвращается, когда резервация не найдена
	ErrReservaNotFound = errors.New("reserva not found")

	// ErrIllegalTransition возвращается при попытке перевести резервацию
	// из терминального состояния
	ErrIllegalTransition = errors.New("illegal reserva state transition")

	// ErrMissingTransactionRef возвращается при подтверждении без ссылки на транзакцию
	ErrMissingTransactionRef = errors.New("transaction reference is required")

	// ErrInvalidStatus возвращается при некорректном статусе в фильтре
	ErrInvalidStatus = errors.New("invalid reserva status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
