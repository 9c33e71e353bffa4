package catalogservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/pkg/ptr"
)

func TestNormalizeServicio(t *testing.T) {
	item := normalizeServicio(&servicioPayload{ID: 10, Nombre: "Animación infantil", PrecioBase: 150.0})

	assert.Equal(t, domain.TipoServicio, item.Tipo)
	assert.Equal(t, 150.0, item.UnitPrice)
}

func TestNormalizeCombo(t *testing.T) {
	item := normalizeCombo(&comboPayload{ID: 20, Nombre: "Combo cumpleaños", Precio: 300.0, DescuentoMonto: ptr.Ptr(50.0)})
	assert.InDelta(t, 250.0, item.UnitPrice, 0.001)

	// Без скидки и со скидкой, съедающей всю цену
	assert.Equal(t, 300.0, normalizeCombo(&comboPayload{Precio: 300.0}).UnitPrice)
	assert.Equal(t, 300.0, normalizeCombo(&comboPayload{Precio: 300.0, DescuentoMonto: ptr.Ptr(400.0)}).UnitPrice)
}

func TestNormalizePromocion(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	item, err := normalizePromocion(&promocionPayload{
		ID:                  30,
		Nombre:              "Promo verano",
		Precio:              200.0,
		DescuentoPorcentaje: ptr.Ptr(25.0),
		VigenteHasta:        ptr.Ptr("2026-03-31"),
	}, now)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, item.UnitPrice, 0.001)
}

func TestNormalizePromocion_Expired(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	_, err := normalizePromocion(&promocionPayload{
		Precio:       200.0,
		VigenteHasta: ptr.Ptr("2026-03-10"),
	}, now)
	assert.ErrorIs(t, err, ErrItemExpired)
}

func TestNormalizePromocion_LastValidDay(t *testing.T) {
	// Промоция действует весь день vigente_hasta включительно
	now := time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC)

	item, err := normalizePromocion(&promocionPayload{
		Precio:       200.0,
		VigenteHasta: ptr.Ptr("2026-03-15"),
	}, now)
	require.NoError(t, err)
	assert.Equal(t, 200.0, item.UnitPrice)
}
