package get_available_slots

import "time"

// Request модель запроса доступных слотов на дату
type Request struct {
	Fecha time.Time // Дата события (без времени)
}

// Slot слот расписания с остатком мест
type Slot struct {
	ID             int64  // ID слота
	HoraInicio     string // Время начала, "10:00"
	HoraFin        string // Время окончания, "14:00"
	CuposTotales   int    // Вместимость слота
	CuposRestantes int    // Остаток мест
}

// Response модель ответа со слотами на дату
type Response struct {
	Fecha time.Time // Запрошенная дата
	Slots []Slot    // Слоты с остатком мест, отсортированы по времени начала
}
