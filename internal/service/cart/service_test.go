package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/cartstore"
	"github.com/fiestaspark/FP-ReservationService/internal/integrations/catalogservice"
	"github.com/fiestaspark/FP-ReservationService/internal/service/cart/models"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeCartStore struct {
	carts map[int64]*domain.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[int64]*domain.Cart{}}
}

func (s *fakeCartStore) Get(_ context.Context, clienteID int64) (*domain.Cart, error) {
	cart, ok := s.carts[clienteID]
	if !ok {
		return nil, cartstore.ErrCartNotFound
	}
	return cart, nil
}

func (s *fakeCartStore) Save(_ context.Context, clienteID int64, cart *domain.Cart) error {
	s.carts[clienteID] = cart
	return nil
}

func (s *fakeCartStore) Delete(_ context.Context, clienteID int64) error {
	delete(s.carts, clienteID)
	return nil
}

type fakeCatalog struct {
	items map[string]*catalogservice.Item
}

func (c *fakeCatalog) GetItem(_ context.Context, tipo domain.TipoItem, id int64) (*catalogservice.Item, error) {
	item, ok := c.items[fmt.Sprintf("%s:%d", tipo, id)]
	if !ok {
		return nil, catalogservice.ErrItemNotFound
	}
	return item, nil
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{items: map[string]*catalogservice.Item{
		"S:10": {ID: 10, Tipo: domain.TipoServicio, Nombre: "Animación infantil", UnitPrice: 150.0},
		"C:20": {ID: 20, Tipo: domain.TipoCombo, Nombre: "Combo cumpleaños", UnitPrice: 300.0},
	}}
}

func addRequest(tipo string, itemID int64, cantidad int) *models.AddItemRequest {
	return &models.AddItemRequest{ClienteID: 7, Tipo: tipo, ItemID: itemID, Cantidad: cantidad}
}

func TestAddItem_PriceComesFromCatalog(t *testing.T) {
	store := newFakeCartStore()
	svc := NewService(store, testCatalog(), fakeLogger{})

	resp, err := svc.AddItem(context.Background(), addRequest("S", 10, 2))
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Animación infantil", resp.Items[0].NombreItem)
	assert.Equal(t, 150.0, resp.Items[0].PrecioUnitario)
	assert.InDelta(t, 300.0, resp.Total, 0.001)
}

func TestAddItem_MergesSameCatalogItem(t *testing.T) {
	store := newFakeCartStore()
	svc := NewService(store, testCatalog(), fakeLogger{})

	_, err := svc.AddItem(context.Background(), addRequest("S", 10, 1))
	require.NoError(t, err)

	resp, err := svc.AddItem(context.Background(), addRequest("S", 10, 2))
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Cantidad)
	assert.InDelta(t, 450.0, resp.Total, 0.001)
}

func TestAddItem_InvalidCantidad(t *testing.T) {
	svc := NewService(newFakeCartStore(), testCatalog(), fakeLogger{})

	for _, cantidad := range []int{0, -1} {
		_, err := svc.AddItem(context.Background(), addRequest("S", 10, cantidad))
		assert.ErrorIs(t, err, ErrInvalidQuantity, "cantidad=%d", cantidad)
	}
}

func TestAddItem_InvalidTipo(t *testing.T) {
	svc := NewService(newFakeCartStore(), testCatalog(), fakeLogger{})

	_, err := svc.AddItem(context.Background(), addRequest("X", 10, 1))
	assert.ErrorIs(t, err, ErrInvalidItemKind)
}

func TestAddItem_CatalogItemMissing(t *testing.T) {
	svc := NewService(newFakeCartStore(), testCatalog(), fakeLogger{})

	_, err := svc.AddItem(context.Background(), addRequest("P", 99, 1))
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	store := newFakeCartStore()
	svc := NewService(store, testCatalog(), fakeLogger{})

	first, err := svc.AddItem(context.Background(), addRequest("S", 10, 1))
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), addRequest("C", 20, 1))
	require.NoError(t, err)

	resp, err := svc.RemoveItem(context.Background(), 7, first.Items[0].ID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "C", resp.Items[0].Tipo)
}

func TestRemoveItem_UnknownLine(t *testing.T) {
	store := newFakeCartStore()
	svc := NewService(store, testCatalog(), fakeLogger{})

	_, err := svc.AddItem(context.Background(), addRequest("S", 10, 1))
	require.NoError(t, err)

	_, err = svc.RemoveItem(context.Background(), 7, 999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItem_NoCart(t *testing.T) {
	svc := NewService(newFakeCartStore(), testCatalog(), fakeLogger{})

	_, err := svc.RemoveItem(context.Background(), 7, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGetCart_MissingCartIsEmpty(t *testing.T) {
	svc := NewService(newFakeCartStore(), testCatalog(), fakeLogger{})

	resp, err := svc.GetCart(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.Total)
}

func TestClear(t *testing.T) {
	store := newFakeCartStore()
	svc := NewService(store, testCatalog(), fakeLogger{})

	_, err := svc.AddItem(context.Background(), addRequest("S", 10, 1))
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), 7))

	resp, err := svc.GetCart(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
