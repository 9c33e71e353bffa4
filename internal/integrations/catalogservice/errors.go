package catalogservice

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция каталога не найдена
	ErrItemNotFound = errors.New("catalogservice client: item not found")

	// ErrItemExpired возвращается, когда промоция уже не действует
	ErrItemExpired = errors.New("catalogservice client: item no longer valid")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса каталога
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
