package cartstore

import "errors"

var (
	// ErrCartNotFound возвращается, когда у сессии нет сохраненной корзины
	ErrCartNotFound = errors.New("cartstore: cart not found")

	// ErrInternal возвращается при ошибках работы с Redis
	ErrInternal = errors.New("cartstore: internal error")
)
