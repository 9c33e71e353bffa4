package slot

import "errors"

var (
	// ErrHorarioNotFound возвращается, когда слот не найден
	ErrHorarioNotFound = errors.New("slot.repository: horario not found")

	// ErrNoCapacity возвращается, когда у слота не осталось свободных мест.
	// Декремент охраняется условием cupos_restantes > 0, поэтому ошибка
	// означает, что вместимость закончилась между чтением и записью.
	ErrNoCapacity = errors.New("slot.repository: no remaining capacity")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
