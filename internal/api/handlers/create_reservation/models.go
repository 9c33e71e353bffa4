package create_reservation

import (
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	createReservation "github.com/fiestaspark/FP-ReservationService/internal/usecase/create_reservation"
)

// DetalleRequest строка детализации в теле запроса
type DetalleRequest struct {
	Tipo     string `json:"tipo"`
	ItemID   int64  `json:"item_id"`
	Cantidad int    `json:"cantidad"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FechaEvento     string           `json:"fecha_evento"` // "2026-03-15"
	HorarioID       int64            `json:"horario_id"`
	DireccionEvento string           `json:"direccion_evento"`
	CodigoReserva   *string          `json:"codigo_reserva,omitempty"`
	Total           *float64         `json:"total,omitempty"`
	DesdeCarrito    bool             `json:"desde_carrito,omitempty"`
	Detalles        []DetalleRequest `json:"detalles,omitempty"`
}

// DetalleResponse строка детализации созданной резервации
type DetalleResponse struct {
	ID             int64   `json:"id"`
	Tipo           string  `json:"tipo"`
	ItemID         int64   `json:"item_id"`
	NombreItem     string  `json:"nombre_item"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Subtotal       float64 `json:"subtotal"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64             `json:"id"`
	CodigoReserva   string            `json:"codigo_reserva"`
	ClienteID       int64             `json:"cliente_id"`
	FechaEvento     string            `json:"fecha_evento"`
	HorarioID       int64             `json:"horario_id"`
	DireccionEvento string            `json:"direccion_evento"`
	Detalles        []DetalleResponse `json:"detalles"`
	Total           float64           `json:"total"`
	Estado          string            `json:"estado"`
	CreadaEn        string            `json:"creada_en"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(clienteID int64) (*createReservation.Request, error) {
	fecha, err := time.Parse(domain.DateFormat, r.FechaEvento)
	if err != nil {
		return nil, err
	}

	detalles := make([]createReservation.DetalleInput, len(r.Detalles))
	for i, d := range r.Detalles {
		detalles[i] = createReservation.DetalleInput{
			Tipo:     d.Tipo,
			ItemID:   d.ItemID,
			Cantidad: d.Cantidad,
		}
	}

	return &createReservation.Request{
		ClienteID:       clienteID,
		FechaEvento:     fecha,
		HorarioID:       r.HorarioID,
		DireccionEvento: r.DireccionEvento,
		Codigo:          r.CodigoReserva,
		Total:           r.Total,
		DesdeCarrito:    r.DesdeCarrito,
		Detalles:        detalles,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	detalles := make([]DetalleResponse, len(resp.Detalles))
	for i, d := range resp.Detalles {
		detalles[i] = DetalleResponse{
			ID:             d.ID,
			Tipo:           d.Tipo,
			ItemID:         d.ItemID,
			NombreItem:     d.NombreItem,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		}
	}

	return &ReservationResponse{
		ID:              resp.ID,
		CodigoReserva:   resp.Codigo,
		ClienteID:       resp.ClienteID,
		FechaEvento:     resp.FechaEvento.Format(domain.DateFormat),
		HorarioID:       resp.HorarioID,
		DireccionEvento: resp.DireccionEvento,
		Detalles:        detalles,
		Total:           resp.Total,
		Estado:          resp.Estado,
		CreadaEn:        resp.CreadaEn.Format(time.RFC3339),
	}
}
