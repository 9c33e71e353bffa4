package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Availability policy constants
const (
	// LowCapacityThreshold marks a date as LIMITED when the best remaining
	// capacity across its slots is at or below this value
	LowCapacityThreshold = 1

	// DefaultCalendarRangeDays is the default horizon of the availability calendar
	DefaultCalendarRangeDays = 60
)

// Business validation constants
const (
	MaxAddressLength         = 255
	MaxDetailLinesPerReserva = 50
	ReservaCodeLength        = 8
	MaxProofSizeBytes        = 5 << 20 // 5 MB
)

// AllowedProofContentTypes is the allow-list of media types accepted as
// payment proof artifacts
var AllowedProofContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
}

// IsAllowedProofContentType reports whether the media type is accepted as proof
func IsAllowedProofContentType(contentType string) bool {
	for _, allowed := range AllowedProofContentTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
