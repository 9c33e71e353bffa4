package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/events"
	reservaRepo "github.com/fiestaspark/FP-ReservationService/internal/infra/storage/reservation"
	"github.com/fiestaspark/FP-ReservationService/internal/service/reservations/models"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeReservaRepo struct {
	reservas map[int64]*domain.Reserva
	listed   []*domain.Reserva

	gotFilter        domain.ReservasFilter
	approveErr       error
	updateErr        error
	approvedID       int64
	gotTransaccion   string
	updatedEstado    domain.ReservaStatus
	updateEstadoDone bool
}

func (r *fakeReservaRepo) GetByID(_ context.Context, id int64) (*domain.Reserva, error) {
	reserva, ok := r.reservas[id]
	if !ok {
		return nil, reservaRepo.ErrReservaNotFound
	}
	return reserva, nil
}

func (r *fakeReservaRepo) GetByCodigo(_ context.Context, codigo string) (*domain.Reserva, error) {
	for _, reserva := range r.reservas {
		if reserva.Codigo == codigo {
			return reserva, nil
		}
	}
	return nil, reservaRepo.ErrReservaNotFound
}

func (r *fakeReservaRepo) ListWithFilter(_ context.Context, filter domain.ReservasFilter) ([]*domain.Reserva, error) {
	r.gotFilter = filter
	return r.listed, nil
}

func (r *fakeReservaRepo) Approve(_ context.Context, id int64, transaccionID string) error {
	if r.approveErr != nil {
		return r.approveErr
	}
	r.approvedID = id
	r.gotTransaccion = transaccionID
	if reserva, ok := r.reservas[id]; ok {
		reserva.Estado = domain.StatusAprobada
		reserva.TransaccionID = &transaccionID
	}
	return nil
}

func (r *fakeReservaRepo) UpdateEstado(_ context.Context, id int64, estado domain.ReservaStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updatedEstado = estado
	r.updateEstadoDone = true
	if reserva, ok := r.reservas[id]; ok {
		reserva.Estado = estado
	}
	return nil
}

type fakeSlotRepo struct {
	increments   int
	lastSlotID   int64
	incrementErr error
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Horario, error) {
	return &domain.Horario{ID: id}, nil
}

func (r *fakeSlotRepo) IncrementCapacity(_ context.Context, id int64) error {
	if r.incrementErr != nil {
		return r.incrementErr
	}
	r.increments++
	r.lastSlotID = id
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	queues []string
	events []events.ReservaEvent
}

func (p *fakePublisher) Publish(_ context.Context, queue string, event events.ReservaEvent) error {
	p.queues = append(p.queues, queue)
	p.events = append(p.events, event)
	return nil
}

func pendingReserva(id int64) *domain.Reserva {
	return &domain.Reserva{
		ID:          id,
		Codigo:      "ABCD2345",
		ClienteID:   7,
		FechaEvento: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		HorarioID:   3,
		Total:       300.0,
		Estado:      domain.StatusPendiente,
		CreadaEn:    time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func newTestService(repo *fakeReservaRepo, slots *fakeSlotRepo, publisher EventPublisher) *Service {
	return NewService(repo, slots, fakeTxManager{}, publisher, fakeLogger{})
}

func TestGetByID(t *testing.T) {
	repo := &fakeReservaRepo{reservas: map[int64]*domain.Reserva{5: pendingReserva(5)}}
	svc := newTestService(repo, &fakeSlotRepo{}, nil)

	resp, err := svc.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "ABCD2345", resp.Codigo)
	assert.Equal(t, "2026-03-20", resp.FechaEvento)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservaNotFound)
}

func TestList_InvalidEstadoFilter(t *testing.T) {
	repo := &fakeReservaRepo{reservas: map[int64]*domain.Reserva{}}
	svc := newTestService(repo, &fakeSlotRepo{}, nil)

	estado := "CONFIRMADA"
	_, err := svc.List(context.Background(), &models.ListReservasRequest{Estado: &estado})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListPending_FiltersByEstado(t *testing.T) {
	repo := &fakeReservaRepo{
		reservas: map[int64]*domain.Reserva{},
		listed:   []*domain.Reserva{pendingReserva(1), pendingReserva(2)},
	}
	svc := newTestService(repo, &fakeSlotRepo{}, nil)

	resp, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Reservas, 2)

	require.NotNil(t, repo.gotFilter.Estado)
	assert.Equal(t, domain.StatusPendiente, *repo.gotFilter.Estado)
	assert.Nil(t, repo.gotFilter.ClienteID)
}

func TestApprove_Success(t *testing.T) {
	repo := &fakeReservaRepo{reservas: map[int64]*domain.Reserva{5: pendingReserva(5)}}
	publisher := &fakePublisher{}
	svc := newTestService(repo, &fakeSlotRepo{}, publisher)

	resp, err := svc.Approve(context.Background(), 5, "TRX-001")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusAprobada), resp.Estado)
	require.NotNil(t, resp.TransaccionID)
	assert.Equal(t, "TRX-001", *resp.TransaccionID)

	require.Len(t, publisher.queues, 1)
	assert.Equal(t, events.QueueReservaAprobada, publisher.queues[0])
	assert.Equal(t, int64(5), publisher.events[0].ReservaID)
}

func TestApprove_EmptyTransactionRef(t *testing.T) {
	repo := &fakeReservaRepo{reservas: map[int64]*domain.Reserva{5: pendingReserva(5)}}
	svc := newTestService(repo, &fakeSlotRepo{}, nil)

	for _, ref := range []string{"", "   ", "\t"} {
		_, err := svc.Approve(context.Background(), 5, ref)
		assert.ErrorIs(t, err, ErrMissingTransactionRef, "ref=%q", ref)
	}

	// Резервация не тронута
	assert.Equal(t, int64(0), repo.approvedID)
	assert.Equal(t, domain.StatusPendiente, repo.reservas[5].Estado)
}

func TestApprove_NotFoundVsNotPending(t *testing.T) {
	// Guarded-обновление не прошло, резервации нет вовсе
	repo := &fakeReservaRepo{
		reservas:   map[int64]*domain.Reserva{},
		approveErr: reservaRepo.ErrNoTransition,
	}
	svc := newTestService(repo, &fakeSlotRepo{}, nil)

	_, err := svc.Approve(context.Background(), 99, "TRX-001")
	assert.ErrorIs(t, err, ErrReservaNotFound)

	// Guarded-обновление не прошло, но резервация существует: терминальный статус
	approved := pendingReserva(5)
	approved.Estado = domain.StatusAprobada
	repo = &fakeReservaRepo{
		reservas:   map[int64]*domain.Reserva{5: approved},
		approveErr: reservaRepo.ErrNoTransition,
	}
	svc = newTestService(repo, &fakeSlotRepo{}, nil)

	_, err = svc.Approve(context.Background(), 5, "TRX-001")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestAnnul_ReleasesCapacity(t *testing.T) {
	repo := &fakeReservaRepo{reservas: map[int64]*domain.Reserva{5: pendingReserva(5)}}
	slots := &fakeSlotRepo{}
	publisher := &fakePublisher{}
	svc := newTestService(repo, slots, publisher)

	resp, err := svc.Annul(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusAnulada), resp.Estado)
	assert.Equal(t, 1, slots.increments)
	assert.Equal(t, int64(3), slots.lastSlotID)

	require.Len(t, publisher.queues, 1)
	assert.Equal(t, events.QueueReservaAnulada, publisher.queues[0])
}

func TestAnnul_NotPending(t *testing.T) {
	repo := &fakeReservaRepo{
		reservas:  map[int64]*domain.Reserva{5: pendingReserva(5)},
		updateErr: reservaRepo.ErrNoTransition,
	}
	slots := &fakeSlotRepo{}
	svc := newTestService(repo, slots, nil)

	_, err := svc.Annul(context.Background(), 5)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, 0, slots.increments)
}

func TestAnnul_NotFound(t *testing.T) {
	svc := newTestService(&fakeReservaRepo{reservas: map[int64]*domain.Reserva{}}, &fakeSlotRepo{}, nil)

	_, err := svc.Annul(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservaNotFound)
}

func TestHide_ReleasesCapacity(t *testing.T) {
	repo := &fakeReservaRepo{reservas: map[int64]*domain.Reserva{5: pendingReserva(5)}}
	slots := &fakeSlotRepo{}
	svc := newTestService(repo, slots, nil)

	require.NoError(t, svc.Hide(context.Background(), 5))

	assert.Equal(t, domain.StatusEliminada, repo.updatedEstado)
	assert.Equal(t, 1, slots.increments)
}

func TestNilPublisherIsSafe(t *testing.T) {
	repo := &fakeReservaRepo{reservas: map[int64]*domain.Reserva{5: pendingReserva(5)}}
	svc := newTestService(repo, &fakeSlotRepo{}, nil)

	_, err := svc.Approve(context.Background(), 5, "TRX-001")
	assert.NoError(t, err)
}
