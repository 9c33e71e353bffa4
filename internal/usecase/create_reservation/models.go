package create_reservation

import "time"

// DetalleInput строка детализации из тела запроса.
// Цена строки всегда берется из каталога, а не из запроса.
type DetalleInput struct {
	Tipo     string // Вид позиции каталога: S, C или P
	ItemID   int64  // ID позиции каталога
	Cantidad int    // Количество единиц
}

// Request модель запроса на создание резервации
type Request struct {
	ClienteID       int64          // ID клиента
	FechaEvento     time.Time      // Дата события (без времени)
	HorarioID       int64          // ID слота расписания
	DireccionEvento string         // Адрес проведения события
	Codigo          *string        // Публичный код резервации (опционально, для повторных запросов)
	Total           *float64       // Итог, заявленный клиентом (опционально, для сверки)
	DesdeCarrito    bool           // Собрать строки из корзины клиента
	Detalles        []DetalleInput // Строки детализации (когда DesdeCarrito=false)
}

// DetalleResult строка детализации созданной резервации
type DetalleResult struct {
	ID             int64
	Tipo           string
	ItemID         int64
	NombreItem     string
	Cantidad       int
	PrecioUnitario float64
	Subtotal       float64
}

// Response модель ответа с созданной резервацией
type Response struct {
	ID              int64           // ID резервации
	Codigo          string          // Публичный код резервации
	ClienteID       int64           // ID клиента
	FechaEvento     time.Time       // Дата события
	HorarioID       int64           // ID слота расписания
	DireccionEvento string          // Адрес проведения
	Detalles        []DetalleResult // Строки детализации
	Total           float64         // Итоговая сумма
	Estado          string          // Статус резервации
	CreadaEn        time.Time       // Время создания

	// AlreadyExisted выставляется, когда код резервации уже был
	// зарегистрирован и возвращена ранее созданная резервация
	AlreadyExisted bool
}
