package create_reservation

import "errors"

var (
	// ErrInvalidSlot возвращается, когда слот не найден или не относится к дате события
	ErrInvalidSlot = errors.New("create_reservation: invalid horario for event date")

	// ErrSlotUnavailable возвращается, когда в слоте не осталось мест
	ErrSlotUnavailable = errors.New("create_reservation: horario has no remaining capacity")

	// ErrInvalidDate возвращается, когда дата события в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid event date")

	// ErrEmptyCart возвращается, когда резервация из корзины запрошена с пустой корзиной
	ErrEmptyCart = errors.New("create_reservation: cart is empty")

	// ErrItemNotFound возвращается, когда позиция каталога из строки детализации не найдена
	ErrItemNotFound = errors.New("create_reservation: catalog item not found")

	// ErrTotalMismatch возвращается, когда заявленный клиентом итог не совпадает
	// с пересчитанной суммой строк
	ErrTotalMismatch = errors.New("create_reservation: declared total does not match line items")

	// ErrCodigoTaken возвращается, когда код резервации уже занят другим клиентом
	ErrCodigoTaken = errors.New("create_reservation: codigo already registered to another client")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
