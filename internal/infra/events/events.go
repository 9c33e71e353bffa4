package events

import "time"

// Имена очередей событий жизненного цикла резервации
const (
	QueueReservaCreada   = "reserva.creada"
	QueueReservaAprobada = "reserva.aprobada"
	QueueReservaAnulada  = "reserva.anulada"
)

// ReservaEvent событие жизненного цикла резервации
// Публикуется для сервиса уведомлений; содержимое денормализовано,
// чтобы потребителю не требовался доступ к БД резерваций
type ReservaEvent struct {
	ReservaID     int64     `json:"reserva_id"`
	Codigo        string    `json:"codigo_reserva"`
	ClienteID     int64     `json:"cliente_id"`
	FechaEvento   string    `json:"fecha_evento"` // YYYY-MM-DD
	Total         float64   `json:"total"`
	Estado        string    `json:"estado"`
	TransaccionID *string   `json:"transaccion_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
