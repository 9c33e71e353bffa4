package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type fakeSlotRepo struct {
	horarios []domain.Horario
	from, to time.Time
}

func (r *fakeSlotRepo) GetByDateRange(_ context.Context, from, to time.Time) ([]domain.Horario, error) {
	r.from, r.to = from, to
	return r.horarios, nil
}

var testNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestUseCase(repo *fakeSlotRepo) *UseCase {
	uc := NewUseCase(repo, fakeLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestExecute_DefaultRange(t *testing.T) {
	repo := &fakeSlotRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, resp.From)
	assert.Equal(t, today.AddDate(0, 0, domain.DefaultCalendarRangeDays), resp.To)
	assert.Len(t, resp.Days, domain.DefaultCalendarRangeDays+1)

	// Без слотов каждый будущий день открыт
	for _, day := range resp.Days {
		assert.Equal(t, string(domain.BandOpen), day.Band)
	}
}

func TestExecute_ExplicitRange(t *testing.T) {
	repo := &fakeSlotRepo{horarios: []domain.Horario{
		{ID: 1, Fecha: time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC), CuposTotales: 2, CuposRestantes: 0},
		{ID: 2, Fecha: time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC), CuposTotales: 2, CuposRestantes: 1},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		From: datePtr(2026, 3, 20),
		To:   datePtr(2026, 3, 22),
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 3)

	assert.Equal(t, string(domain.BandOpen), resp.Days[0].Band)
	assert.Equal(t, domain.BandColorVerde, resp.Days[0].Color)

	assert.Equal(t, string(domain.BandFull), resp.Days[1].Band)
	assert.Equal(t, domain.BandColorRojo, resp.Days[1].Color)

	assert.Equal(t, string(domain.BandLimited), resp.Days[2].Band)
	assert.Equal(t, domain.BandColorAmarillo, resp.Days[2].Color)

	// Репозиторий опрошен ровно по запрошенному диапазону
	assert.Equal(t, *datePtr(2026, 3, 20), repo.from)
	assert.Equal(t, *datePtr(2026, 3, 22), repo.to)
}

func TestExecute_PastDaysAreGray(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		From: datePtr(2026, 3, 13),
		To:   datePtr(2026, 3, 15),
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 3)

	assert.Equal(t, string(domain.BandPast), resp.Days[0].Band)
	assert.Equal(t, domain.BandColorGris, resp.Days[0].Color)
	assert.Equal(t, string(domain.BandPast), resp.Days[1].Band)

	// Сегодняшний день не считается прошедшим
	assert.Equal(t, string(domain.BandOpen), resp.Days[2].Band)
}

func TestExecute_InvertedRange(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		From: datePtr(2026, 3, 22),
		To:   datePtr(2026, 3, 20),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_SingleDayRange(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		From: datePtr(2026, 3, 20),
		To:   datePtr(2026, 3, 20),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Days, 1)
}
