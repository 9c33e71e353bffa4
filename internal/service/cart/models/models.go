package models

import "github.com/fiestaspark/FP-ReservationService/internal/domain"

// Request модели

// AddItemRequest запрос на добавление позиции в корзину
type AddItemRequest struct {
	ClienteID int64  `json:"cliente_id"`
	Tipo      string `json:"tipo"`
	ItemID    int64  `json:"item_id"`
	Cantidad  int    `json:"cantidad"`
}

// Response модели

// CartItemResponse строка корзины
type CartItemResponse struct {
	ID             int64   `json:"id"`
	Tipo           string  `json:"tipo"`
	ItemID         int64   `json:"item_id"`
	NombreItem     string  `json:"nombre_item"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Subtotal       float64 `json:"subtotal"`
}

// CartResponse ответ с содержимым корзины
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

// FromDomainCart конвертирует domain корзину в DTO
func FromDomainCart(c *domain.Cart) *CartResponse {
	if c == nil {
		return &CartResponse{Items: []CartItemResponse{}}
	}

	resp := &CartResponse{
		Items: make([]CartItemResponse, len(c.Items)),
		Total: c.Total(),
	}

	for i, item := range c.Items {
		resp.Items[i] = CartItemResponse{
			ID:             item.ID,
			Tipo:           string(item.Tipo),
			ItemID:         item.ItemID,
			NombreItem:     item.NombreItem,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		}
	}

	return resp
}
