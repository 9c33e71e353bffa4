package cart

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция каталога или строка корзины не найдена
	ErrItemNotFound = errors.New("cart item not found")

	// ErrInvalidQuantity возвращается при неположительном количестве
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidItemKind возвращается при неизвестном виде позиции каталога
	ErrInvalidItemKind = errors.New("invalid catalog item kind")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
