package domain

import "time"

// Band is the availability classification of a calendar date
type Band string

const (
	BandOpen    Band = "OPEN"
	BandLimited Band = "LIMITED"
	BandFull    Band = "FULL"
	BandPast    Band = "PAST"
)

// Wire values the calendar frontend renders. Absence of data means green.
const (
	BandColorVerde    = "verde"    // OPEN
	BandColorAmarillo = "amarillo" // LIMITED
	BandColorRojo     = "rojo"     // FULL
	BandColorGris     = "gris"     // PAST
)

// Color returns the wire color for the band
func (b Band) Color() string {
	switch b {
	case BandLimited:
		return BandColorAmarillo
	case BandFull:
		return BandColorRojo
	case BandPast:
		return BandColorGris
	default:
		return BandColorVerde
	}
}

// IsSelectable reports whether a date with this band may be picked by a customer
func (b Band) IsSelectable() bool {
	return b == BandOpen || b == BandLimited
}

// Classify computes the availability band of a calendar date from the slots
// scheduled on it. Pure function, no side effects.
//
// Rules, in order:
//  1. dates before today are PAST regardless of slot data;
//  2. a date with no slots is OPEN (default-open policy);
//  3. if every slot is exhausted the date is FULL;
//  4. otherwise the band reflects the best remaining capacity across slots:
//     at or below the low threshold is LIMITED, above it is OPEN.
//
// A mixed date (some slots full, some open) therefore classifies by its
// best case, not its worst.
func Classify(date time.Time, slots []Horario, now time.Time) Band {
	if dateOnly(date).Before(dateOnly(now)) {
		return BandPast
	}

	if len(slots) == 0 {
		return BandOpen
	}

	bestRemaining := 0
	for _, slot := range slots {
		if slot.CuposRestantes > bestRemaining {
			bestRemaining = slot.CuposRestantes
		}
	}

	switch {
	case bestRemaining == 0:
		return BandFull
	case bestRemaining <= LowCapacityThreshold:
		return BandLimited
	default:
		return BandOpen
	}
}

// DayBand pairs a calendar date with its computed band
type DayBand struct {
	Fecha time.Time
	Band  Band
}

// ClassifyRange classifies every date in [from, to] inclusive.
// Slots are grouped by date before classification.
func ClassifyRange(from, to time.Time, slots []Horario, now time.Time) []DayBand {
	byDate := make(map[string][]Horario)
	for _, slot := range slots {
		key := slot.Fecha.Format(DateFormat)
		byDate[key] = append(byDate[key], slot)
	}

	bands := make([]DayBand, 0)
	for d := dateOnly(from); !d.After(dateOnly(to)); d = d.AddDate(0, 0, 1) {
		bands = append(bands, DayBand{
			Fecha: d,
			Band:  Classify(d, byDate[d.Format(DateFormat)], now),
		})
	}
	return bands
}

// dateOnly truncates a timestamp to its calendar date
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
