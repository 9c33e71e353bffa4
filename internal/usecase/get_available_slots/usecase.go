package get_available_slots

import (
	"context"
	"fmt"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// UseCase use case для получения слотов расписания на дату события
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет use case получения слотов на дату.
// Полные слоты не скрываются: клиент видит весь день и остатки мест.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: fecha=%s", req.Fecha.Format(domain.DateFormat))

	if req.Fecha.IsZero() {
		uc.logger.Warn("GetAvailableSlots: fecha is required")
		return nil, fmt.Errorf("%w: fecha is required", ErrInvalidInput)
	}

	horarios, err := uc.slotRepo.GetByDate(ctx, req.Fecha)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get horarios for fecha=%s: %v",
			req.Fecha.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get horarios: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(horarios))
	for i, h := range horarios {
		slots[i] = Slot{
			ID:             h.ID,
			HoraInicio:     h.HoraInicio.String(),
			HoraFin:        h.HoraFin.String(),
			CuposTotales:   h.CuposTotales,
			CuposRestantes: h.CuposRestantes,
		}
	}

	uc.logger.Info("GetAvailableSlots: found %d horarios for fecha=%s",
		len(slots), req.Fecha.Format(domain.DateFormat))

	return &Response{
		Fecha: req.Fecha,
		Slots: slots,
	}, nil
}
