package domain

import "time"

// ReservaStatus represents the lifecycle state of a reservation.
// The wire values are the Spanish estados the clients already speak.
type ReservaStatus string

const (
	StatusPendiente ReservaStatus = "PENDIENTE"
	StatusAprobada  ReservaStatus = "APROBADA"
	StatusAnulada   ReservaStatus = "ANULADA"
	StatusEliminada ReservaStatus = "ELIMINADA" // soft delete, kept for audit
)

// Reserva represents a customer reservation for an event date and slot.
//
// DetailLines, Total and HorarioID are frozen at creation time. Only Estado,
// MetodoPago, TransaccionID, ComprobantePago and ConfirmadaEn may change
// afterwards, and only through lifecycle transitions.
type Reserva struct {
	ID              int64
	Codigo          string // client-suppliable idempotency key
	ClienteID       int64
	FechaEvento     time.Time
	HorarioID       int64
	DireccionEvento string
	MetodoPago      *MetodoPago
	Detalles        []DetalleReserva
	Total           float64
	Estado          ReservaStatus
	TransaccionID   *string
	ComprobantePago *string

	CreadaEn     time.Time
	ConfirmadaEn *time.Time
}

// IsPending returns true while the reservation awaits staff verification
func (r *Reserva) IsPending() bool {
	return r.Estado == StatusPendiente
}

// IsTerminal returns true once the reservation left PENDIENTE.
// Terminal states admit no further transitions.
func (r *Reserva) IsTerminal() bool {
	return r.Estado != StatusPendiente
}

// CanBeApproved returns true if the approval transition is legal
func (r *Reserva) CanBeApproved() bool {
	return r.Estado == StatusPendiente
}

// CanBeAnnulled returns true if the annulment transition is legal
func (r *Reserva) CanBeAnnulled() bool {
	return r.Estado == StatusPendiente
}

// CanBeHidden returns true if the soft-delete transition is legal
func (r *Reserva) CanBeHidden() bool {
	return r.Estado == StatusPendiente
}

// DetallesTotal sums the frozen detail line subtotals
func (r *Reserva) DetallesTotal() float64 {
	var total float64
	for _, d := range r.Detalles {
		total += d.Subtotal
	}
	return total
}

// ValidStatuses lists every estado the service accepts on filters
var ValidStatuses = []ReservaStatus{
	StatusPendiente,
	StatusAprobada,
	StatusAnulada,
	StatusEliminada,
}

// IsValidStatus reports whether s is a known estado value
func IsValidStatus(s ReservaStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// ReservasFilter filters reservation listings
type ReservasFilter struct {
	ClienteID     *int64         // nil = all customers (staff view)
	Estado        *ReservaStatus // nil = every estado except ELIMINADA
	IncludeHidden bool           // include soft-deleted rows (audit views only)
}
