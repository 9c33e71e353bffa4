package create_reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/cartstore"
	reservaRepo "github.com/fiestaspark/FP-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/fiestaspark/FP-ReservationService/internal/infra/storage/slot"
	"github.com/fiestaspark/FP-ReservationService/internal/integrations/catalogservice"
	"github.com/fiestaspark/FP-ReservationService/pkg/ptr"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type fakeReservaRepo struct {
	created   *domain.Reserva
	createErr error
	existing  *domain.Reserva
}

func (r *fakeReservaRepo) Create(_ context.Context, reserva *domain.Reserva) (*domain.Reserva, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	out := *reserva
	out.ID = 42
	out.CreadaEn = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	r.created = &out
	return &out, nil
}

func (r *fakeReservaRepo) GetByCodigo(_ context.Context, codigo string) (*domain.Reserva, error) {
	if r.existing == nil || r.existing.Codigo != codigo {
		return nil, reservaRepo.ErrReservaNotFound
	}
	return r.existing, nil
}

type fakeSlotRepo struct {
	horario    *domain.Horario
	getErr     error
	decErr     error
	decrements int
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Horario, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.horario, nil
}

func (r *fakeSlotRepo) DecrementCapacity(_ context.Context, id int64) error {
	if r.decErr != nil {
		return r.decErr
	}
	r.decrements++
	return nil
}

type fakeCartStore struct {
	cart    *domain.Cart
	deleted bool
}

func (s *fakeCartStore) Get(_ context.Context, clienteID int64) (*domain.Cart, error) {
	if s.cart == nil {
		return nil, cartstore.ErrCartNotFound
	}
	return s.cart, nil
}

func (s *fakeCartStore) Delete(_ context.Context, clienteID int64) error {
	s.deleted = true
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func eventDate() time.Time {
	return time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(reservas *fakeReservaRepo, slots *fakeSlotRepo, carts *fakeCartStore, catalog *fakeCatalog) *UseCase {
	uc := NewUseCase(reservas, slots, carts, catalog, fakeTxManager{}, nil, fakeLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClienteID:       7,
		FechaEvento:     eventDate(),
		HorarioID:       3,
		DireccionEvento: "Av. Los Pinos 123",
		Detalles: []DetalleInput{
			{Tipo: "S", ItemID: 10, Cantidad: 2},
		},
	}
}

func availableSlot() *domain.Horario {
	return &domain.Horario{
		ID:             3,
		Fecha:          eventDate(),
		CuposTotales:   5,
		CuposRestantes: 5,
	}
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{items: map[string]*catalogservice.Item{
		"S:10": {ID: 10, Tipo: domain.TipoServicio, Nombre: "Animación infantil", UnitPrice: 150.0},
	}}
}

func TestExecute_Success(t *testing.T) {
	reservas := &fakeReservaRepo{}
	slots := &fakeSlotRepo{horario: availableSlot()}
	uc := newTestUseCase(reservas, slots, &fakeCartStore{}, testCatalog())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPendiente), resp.Estado)
	assert.False(t, resp.AlreadyExisted)
	assert.Len(t, resp.Codigo, domain.ReservaCodeLength)
	assert.Equal(t, 1, slots.decrements)

	// Цена строки берется из каталога
	require.Len(t, resp.Detalles, 1)
	assert.Equal(t, 150.0, resp.Detalles[0].PrecioUnitario)
	assert.InDelta(t, 300.0, resp.Total, 0.001)
}

func TestExecute_ClientCodigoIsNormalized(t *testing.T) {
	reservas := &fakeReservaRepo{}
	slots := &fakeSlotRepo{horario: availableSlot()}
	uc := newTestUseCase(reservas, slots, &fakeCartStore{}, testCatalog())

	req := validRequest()
	req.Codigo = ptr.Ptr("  abcd2345 ")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ABCD2345", resp.Codigo)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservaRepo{}, &fakeSlotRepo{horario: availableSlot()}, &fakeCartStore{}, testCatalog())

	req := validRequest()
	req.FechaEvento = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayIsAccepted(t *testing.T) {
	reservas := &fakeReservaRepo{}
	slots := &fakeSlotRepo{horario: &domain.Horario{
		ID:             3,
		Fecha:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CuposTotales:   5,
		CuposRestantes: 5,
	}}
	uc := newTestUseCase(reservas, slots, &fakeCartStore{}, testCatalog())

	req := validRequest()
	req.FechaEvento = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_SlotNotFound(t *testing.T) {
	slots := &fakeSlotRepo{getErr: slotRepo.ErrHorarioNotFound}
	uc := newTestUseCase(&fakeReservaRepo{}, slots, &fakeCartStore{}, testCatalog())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_SlotDateMismatch(t *testing.T) {
	slots := &fakeSlotRepo{horario: &domain.Horario{
		ID:             3,
		Fecha:          eventDate().AddDate(0, 0, 1),
		CuposTotales:   5,
		CuposRestantes: 5,
	}}
	uc := newTestUseCase(&fakeReservaRepo{}, slots, &fakeCartStore{}, testCatalog())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_SlotFull(t *testing.T) {
	slots := &fakeSlotRepo{horario: &domain.Horario{
		ID:             3,
		Fecha:          eventDate(),
		CuposTotales:   5,
		CuposRestantes: 0,
	}}
	uc := newTestUseCase(&fakeReservaRepo{}, slots, &fakeCartStore{}, testCatalog())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 0, slots.decrements)
}

func TestExecute_CapacityRaceLost(t *testing.T) {
	// Слот выглядел свободным при чтении, но место ушло при списании
	slots := &fakeSlotRepo{horario: availableSlot(), decErr: slotRepo.ErrNoCapacity}
	uc := newTestUseCase(&fakeReservaRepo{}, slots, &fakeCartStore{}, testCatalog())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_TotalMismatch(t *testing.T) {
	uc := newTestUseCase(&fakeReservaRepo{}, &fakeSlotRepo{horario: availableSlot()}, &fakeCartStore{}, testCatalog())

	req := validRequest()
	req.Total = ptr.Ptr(250.0)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTotalMismatch)
}

func TestExecute_DeclaredTotalWithinTolerance(t *testing.T) {
	uc := newTestUseCase(&fakeReservaRepo{}, &fakeSlotRepo{horario: availableSlot()}, &fakeCartStore{}, testCatalog())

	req := validRequest()
	req.Total = ptr.Ptr(300.004)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CatalogItemMissing(t *testing.T) {
	uc := newTestUseCase(&fakeReservaRepo{}, &fakeSlotRepo{horario: availableSlot()}, &fakeCartStore{},
		&fakeCatalog{items: map[string]*catalogservice.Item{}})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestExecute_FromCart(t *testing.T) {
	cart := domain.NewCart()
	cart.Add(domain.TipoServicio, 10, "Animación infantil", 2, 150.0)
	cart.Add(domain.TipoCombo, 20, "Combo cumpleaños", 1, 300.0)
	carts := &fakeCartStore{cart: cart}

	reservas := &fakeReservaRepo{}
	uc := newTestUseCase(reservas, &fakeSlotRepo{horario: availableSlot()}, carts, testCatalog())

	req := validRequest()
	req.DesdeCarrito = true
	req.Detalles = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, resp.Detalles, 2)
	assert.InDelta(t, 600.0, resp.Total, 0.001)
	assert.True(t, carts.deleted, "cart must be cleared after checkout")
}

func TestExecute_EmptyCart(t *testing.T) {
	uc := newTestUseCase(&fakeReservaRepo{}, &fakeSlotRepo{horario: availableSlot()}, &fakeCartStore{}, testCatalog())

	req := validRequest()
	req.DesdeCarrito = true
	req.Detalles = nil

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestExecute_CartWithBodyDetallesRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservaRepo{}, &fakeSlotRepo{horario: availableSlot()}, &fakeCartStore{}, testCatalog())

	req := validRequest()
	req.DesdeCarrito = true

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DuplicateCodigoReturnsExisting(t *testing.T) {
	existing := &domain.Reserva{
		ID:          11,
		Codigo:      "ABCD2345",
		ClienteID:   7,
		FechaEvento: eventDate(),
		HorarioID:   3,
		Total:       300.0,
		Estado:      domain.StatusPendiente,
	}
	reservas := &fakeReservaRepo{createErr: reservaRepo.ErrDuplicateCodigo, existing: existing}
	slots := &fakeSlotRepo{horario: availableSlot()}
	carts := &fakeCartStore{}
	uc := newTestUseCase(reservas, slots, carts, testCatalog())

	req := validRequest()
	req.Codigo = ptr.Ptr("ABCD2345")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.AlreadyExisted)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "ABCD2345", resp.Codigo)

	// Дубликат не списывает место и не трогает корзину
	assert.Equal(t, 0, slots.decrements)
	assert.False(t, carts.deleted)
}

func TestExecute_DuplicateCodigoOfAnotherClient(t *testing.T) {
	existing := &domain.Reserva{
		ID:          11,
		Codigo:      "ABCD2345",
		ClienteID:   99,
		FechaEvento: eventDate(),
		HorarioID:   3,
		Total:       300.0,
		Estado:      domain.StatusPendiente,
	}
	reservas := &fakeReservaRepo{createErr: reservaRepo.ErrDuplicateCodigo, existing: existing}
	uc := newTestUseCase(reservas, &fakeSlotRepo{horario: availableSlot()}, &fakeCartStore{}, testCatalog())

	req := validRequest()
	req.Codigo = ptr.Ptr("ABCD2345")

	// Код занят другим клиентом: чужая резервация не возвращается
	resp, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCodigoTaken)
	assert.Nil(t, resp)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeReservaRepo{}, &fakeSlotRepo{horario: availableSlot()}, &fakeCartStore{}, testCatalog())

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing cliente", func(r *Request) { r.ClienteID = 0 }},
		{"missing horario", func(r *Request) { r.HorarioID = 0 }},
		{"missing fecha", func(r *Request) { r.FechaEvento = time.Time{} }},
		{"blank direccion", func(r *Request) { r.DireccionEvento = "   " }},
		{"no detalles", func(r *Request) { r.Detalles = nil }},
		{"bad tipo", func(r *Request) { r.Detalles[0].Tipo = "X" }},
		{"zero cantidad", func(r *Request) { r.Detalles[0].Cantidad = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGenerateCodigo(t *testing.T) {
	codigo, err := generateCodigo(domain.ReservaCodeLength)
	require.NoError(t, err)
	require.Len(t, codigo, domain.ReservaCodeLength)

	for _, c := range codigo {
		assert.Contains(t, codigoAlphabet, string(c))
	}
	assert.NotContains(t, codigo, "0")
	assert.NotContains(t, codigo, "O")
	assert.NotContains(t, codigo, "1")
	assert.NotContains(t, codigo, "I")
}
