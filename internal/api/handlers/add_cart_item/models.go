package add_cart_item

// AddItemRequest тело запроса добавления позиции в корзину
type AddItemRequest struct {
	Tipo     string `json:"tipo_item"` // S, C или P
	ItemID   int64  `json:"item_id"`   // ID позиции каталога
	Cantidad int    `json:"cantidad"`  // Количество единиц
}
