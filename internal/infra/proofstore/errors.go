package proofstore

import "errors"

var (
	// ErrTooLarge возвращается, когда компробант превышает лимит размера
	ErrTooLarge = errors.New("proofstore: artifact too large")

	// ErrInternal возвращается при ошибках записи на диск
	ErrInternal = errors.New("proofstore: internal error")
)
