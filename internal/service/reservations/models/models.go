package models

import (
	"errors"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reserva status")
)

// Request модели

// ListReservasRequest запрос на получение списка резерваций
type ListReservasRequest struct {
	ClienteID     *int64  `json:"cliente_id,omitempty"` // Фильтр по клиенту (опционально)
	Estado        *string `json:"estado,omitempty"`     // Фильтр по статусу (опционально)
	IncludeHidden bool    `json:"include_hidden,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservasRequest) ToDomainFilter() (domain.ReservasFilter, error) {
	filter := domain.ReservasFilter{
		ClienteID:     r.ClienteID,
		IncludeHidden: r.IncludeHidden,
	}

	// Конвертируем статус если указан
	if r.Estado != nil {
		estado, err := ToDomainEstado(*r.Estado)
		if err != nil {
			return filter, err
		}
		filter.Estado = &estado
	}

	return filter, nil
}

// Response модели

// DetalleResponse строка детализации резервации
type DetalleResponse struct {
	ID             int64   `json:"id"`
	Tipo           string  `json:"tipo"`
	ItemID         int64   `json:"item_id"`
	NombreItem     string  `json:"nombre_item"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Subtotal       float64 `json:"subtotal"`
}

// ReservaResponse ответ с данными резервации
type ReservaResponse struct {
	ID              int64             `json:"id"`
	Codigo          string            `json:"codigo_reserva"`
	ClienteID       int64             `json:"cliente_id"`
	FechaEvento     string            `json:"fecha_evento"` // "2026-03-15"
	HorarioID       int64             `json:"horario_id"`
	DireccionEvento string            `json:"direccion_evento"`
	MetodoPago      *string           `json:"metodo_pago,omitempty"`
	Detalles        []DetalleResponse `json:"detalles"`
	Total           float64           `json:"total"`
	Estado          string            `json:"estado"`
	TransaccionID   *string           `json:"transaccion_id,omitempty"`
	ComprobantePago *string           `json:"comprobante_pago,omitempty"`
	CreadaEn        time.Time         `json:"creada_en"`
	ConfirmadaEn    *string           `json:"confirmada_en,omitempty"` // ISO 8601
}

// ReservaListResponse ответ со списком резерваций
type ReservaListResponse struct {
	Reservas []ReservaResponse `json:"reservas"`
}

// Методы конвертации

// FromDomainReserva конвертирует domain модель в DTO
func FromDomainReserva(r *domain.Reserva) *ReservaResponse {
	if r == nil {
		return nil
	}

	resp := &ReservaResponse{
		ID:              r.ID,
		Codigo:          r.Codigo,
		ClienteID:       r.ClienteID,
		FechaEvento:     r.FechaEvento.Format(domain.DateFormat),
		HorarioID:       r.HorarioID,
		DireccionEvento: r.DireccionEvento,
		Detalles:        make([]DetalleResponse, len(r.Detalles)),
		Total:           r.Total,
		Estado:          string(r.Estado),
		TransaccionID:   r.TransaccionID,
		ComprobantePago: r.ComprobantePago,
		CreadaEn:        r.CreadaEn,
	}

	if r.MetodoPago != nil {
		metodo := string(*r.MetodoPago)
		resp.MetodoPago = &metodo
	}

	for i, d := range r.Detalles {
		resp.Detalles[i] = DetalleResponse{
			ID:             d.ID,
			Tipo:           string(d.Tipo),
			ItemID:         d.ItemID,
			NombreItem:     d.NombreItem,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		}
	}

	// Конвертируем ConfirmadaEn в строку ISO 8601
	if r.ConfirmadaEn != nil {
		confirmedStr := r.ConfirmadaEn.Format(time.RFC3339)
		resp.ConfirmadaEn = &confirmedStr
	}

	return resp
}

// FromDomainReservaList конвертирует список domain моделей в DTO
func FromDomainReservaList(reservas []*domain.Reserva) *ReservaListResponse {
	if reservas == nil {
		return &ReservaListResponse{
			Reservas: []ReservaResponse{},
		}
	}

	resp := &ReservaListResponse{
		Reservas: make([]ReservaResponse, len(reservas)),
	}

	for i, reserva := range reservas {
		if reservaResp := FromDomainReserva(reserva); reservaResp != nil {
			resp.Reservas[i] = *reservaResp
		}
	}

	return resp
}

// ToDomainEstado конвертирует строку в domain.ReservaStatus с валидацией
func ToDomainEstado(estado string) (domain.ReservaStatus, error) {
	s := domain.ReservaStatus(estado)

	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}

	return s, nil
}
