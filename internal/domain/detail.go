package domain

// TipoItem tags the catalog kind of a line: servicio, combo or promocion
type TipoItem string

const (
	TipoServicio  TipoItem = "S"
	TipoCombo     TipoItem = "C"
	TipoPromocion TipoItem = "P"
)

// IsValidTipoItem reports whether t is a known catalog kind
func IsValidTipoItem(t TipoItem) bool {
	return t == TipoServicio || t == TipoCombo || t == TipoPromocion
}

// DetalleReserva is the immutable point-in-time snapshot of one purchased
// catalog item inside a reservation. Prices never change after creation even
// if the catalog price does.
type DetalleReserva struct {
	ID             int64
	ReservaID      int64
	Tipo           TipoItem
	ItemID         int64
	NombreItem     string
	Cantidad       int
	PrecioUnitario float64
	Subtotal       float64
}
