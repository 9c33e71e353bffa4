package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/pkg/types"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeSlotRepo struct {
	horarios []domain.Horario
}

func (r *fakeSlotRepo) GetByDate(_ context.Context, fecha time.Time) ([]domain.Horario, error) {
	return r.horarios, nil
}

func TestExecute_ReturnsWholeDay(t *testing.T) {
	fecha := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	repo := &fakeSlotRepo{horarios: []domain.Horario{
		{ID: 1, Fecha: fecha, HoraInicio: types.TimeString("10:00"), HoraFin: types.TimeString("13:00"), CuposTotales: 3, CuposRestantes: 2},
		{ID: 2, Fecha: fecha, HoraInicio: types.TimeString("15:00"), HoraFin: types.TimeString("18:00"), CuposTotales: 3, CuposRestantes: 0},
	}}
	uc := NewUseCase(repo, fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Fecha: fecha})
	require.NoError(t, err)

	// Исчерпанные слоты не скрываются
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "10:00", resp.Slots[0].HoraInicio)
	assert.Equal(t, 2, resp.Slots[0].CuposRestantes)
	assert.Equal(t, 0, resp.Slots[1].CuposRestantes)
}

func TestExecute_MissingFecha(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, fakeLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, fakeLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Fecha: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
