package catalogservice

import (
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// Item нормализованная позиция каталога
//
// Каталог отдает сервисы, комбо и промоции с разными полями цены; клиент
// сводит их к одному UnitPrice на своей границе, чтобы ядро никогда не
// ветвилось по виду позиции.
type Item struct {
	ID        int64
	Tipo      domain.TipoItem
	Nombre    string
	UnitPrice float64
}

// servicioPayload ответ каталога для сервиса
type servicioPayload struct {
	ID         int64   `json:"id"`
	Nombre     string  `json:"nombre"`
	PrecioBase float64 `json:"precio_base"`
}

// comboPayload ответ каталога для комбо
type comboPayload struct {
	ID             int64    `json:"id"`
	Nombre         string   `json:"nombre"`
	Precio         float64  `json:"precio"`
	DescuentoMonto *float64 `json:"descuento_monto,omitempty"`
}

// promocionPayload ответ каталога для промоции
type promocionPayload struct {
	ID                  int64    `json:"id"`
	Nombre              string   `json:"nombre"`
	Precio              float64  `json:"precio"`
	DescuentoPorcentaje *float64 `json:"descuento_porcentaje,omitempty"`
	VigenteHasta        *string  `json:"vigente_hasta,omitempty"` // YYYY-MM-DD
}

// normalizeServicio приводит сервис к нормализованной позиции
func normalizeServicio(p *servicioPayload) *Item {
	return &Item{
		ID:        p.ID,
		Tipo:      domain.TipoServicio,
		Nombre:    p.Nombre,
		UnitPrice: p.PrecioBase,
	}
}

// normalizeCombo приводит комбо к нормализованной позиции,
// применяя фиксированную скидку на границе
func normalizeCombo(p *comboPayload) *Item {
	price := p.Precio
	if p.DescuentoMonto != nil && *p.DescuentoMonto > 0 && *p.DescuentoMonto < price {
		price -= *p.DescuentoMonto
	}
	return &Item{
		ID:        p.ID,
		Tipo:      domain.TipoCombo,
		Nombre:    p.Nombre,
		UnitPrice: price,
	}
}

// normalizePromocion приводит промоцию к нормализованной позиции,
// применяя процентную скидку и проверяя срок действия
func normalizePromocion(p *promocionPayload, now time.Time) (*Item, error) {
	if p.VigenteHasta != nil {
		hasta, err := time.Parse(domain.DateFormat, *p.VigenteHasta)
		if err == nil && now.After(hasta.AddDate(0, 0, 1)) {
			return nil, ErrItemExpired
		}
	}

	price := p.Precio
	if p.DescuentoPorcentaje != nil && *p.DescuentoPorcentaje > 0 && *p.DescuentoPorcentaje < 100 {
		price = price * (1 - *p.DescuentoPorcentaje/100)
	}

	return &Item{
		ID:        p.ID,
		Tipo:      domain.TipoPromocion,
		Nombre:    p.Nombre,
		UnitPrice: price,
	}, nil
}
