package domain

import (
	"time"

	"github.com/fiestaspark/FP-ReservationService/pkg/types"
)

// Horario represents a bookable time window on a given date with finite
// capacity. Slots are created and maintained externally; this service only
// reads remaining capacity and mutates it through guarded atomic updates.
type Horario struct {
	ID             int64
	Fecha          time.Time
	HoraInicio     types.TimeString
	HoraFin        types.TimeString
	CuposTotales   int
	CuposRestantes int
}

// IsFull returns true if the slot has no remaining capacity
func (h *Horario) IsFull() bool {
	return h.CuposRestantes <= 0
}

// IsLastUnit returns true when exactly the last unit remains
func (h *Horario) IsLastUnit() bool {
	return h.CuposRestantes == LowCapacityThreshold
}

// MatchesDate reports whether the slot belongs to the given calendar date
func (h *Horario) MatchesDate(date time.Time) bool {
	y1, m1, d1 := h.Fecha.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
