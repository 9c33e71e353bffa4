package reservation

import "errors"

var (
	// ErrReservaNotFound возвращается, когда резервация не найдена
	ErrReservaNotFound = errors.New("reservation.repository: reserva not found")

	// ErrDuplicateCodigo возвращается при попытке создать резервацию с уже существующим кодом
	// Код резервации служит идемпотентным ключом создания
	ErrDuplicateCodigo = errors.New("reservation.repository: duplicate codigo_reserva")

	// ErrNoTransition возвращается, когда охраняемый UPDATE не изменил ни одной строки:
	// резервация либо не существует, либо уже покинула статус PENDIENTE
	ErrNoTransition = errors.New("reservation.repository: no rows transitioned")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
