package domain

// CartItem is one line of a customer's cart. The unit price is snapshotted
// from the catalog at add time, not a live reference.
type CartItem struct {
	ID             int64    `json:"id"`
	Tipo           TipoItem `json:"tipo"`
	ItemID         int64    `json:"item_id"`
	NombreItem     string   `json:"nombre_item"`
	Cantidad       int      `json:"cantidad"`
	PrecioUnitario float64  `json:"precio_unitario"`
	Subtotal       float64  `json:"subtotal"`
}

// Cart holds the line items of a single customer session.
// It is never shared across sessions.
type Cart struct {
	Items  []CartItem `json:"items"`
	NextID int64      `json:"next_id"`
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}, NextID: 1}
}

// Add appends a line with the given price snapshot. Lines referencing the
// same catalog item merge by incrementing quantity.
func (c *Cart) Add(tipo TipoItem, itemID int64, nombre string, cantidad int, precioUnitario float64) CartItem {
	for i := range c.Items {
		if c.Items[i].Tipo == tipo && c.Items[i].ItemID == itemID {
			c.Items[i].Cantidad += cantidad
			c.Items[i].Subtotal = c.Items[i].PrecioUnitario * float64(c.Items[i].Cantidad)
			return c.Items[i]
		}
	}

	item := CartItem{
		ID:             c.NextID,
		Tipo:           tipo,
		ItemID:         itemID,
		NombreItem:     nombre,
		Cantidad:       cantidad,
		PrecioUnitario: precioUnitario,
		Subtotal:       precioUnitario * float64(cantidad),
	}
	c.NextID++
	c.Items = append(c.Items, item)
	return item
}

// Remove deletes the line with the given id.
// Returns false if no such line exists.
func (c *Cart) Remove(itemID int64) bool {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Total recomputes the cart total from line subtotals on every call
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal
	}
	return total
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ToDetalles materializes the cart lines as immutable reservation detail
// snapshots. The caller owns clearing the cart once the reservation commits.
func (c *Cart) ToDetalles() []DetalleReserva {
	detalles := make([]DetalleReserva, len(c.Items))
	for i, item := range c.Items {
		detalles[i] = DetalleReserva{
			Tipo:           item.Tipo,
			ItemID:         item.ItemID,
			NombreItem:     item.NombreItem,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		}
	}
	return detalles
}
