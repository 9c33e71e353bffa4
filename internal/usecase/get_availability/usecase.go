package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// UseCase use case для построения календаря доступности.
// Классификация дней чисто вычислительная, поэтому usecase лишь
// загружает слоты диапазона одним запросом и передает их в домен.
type UseCase struct {
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения календаря доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	from, to := resolveRange(req, now)
	if to.Before(from) {
		uc.logger.Warn("GetAvailability: to=%s is before from=%s",
			to.Format(domain.DateFormat), from.Format(domain.DateFormat))
		return nil, ErrInvalidRange
	}

	uc.logger.Info("GetAvailability: building calendar from=%s to=%s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	horarios, err := uc.slotRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get horarios: %v", err)
		return nil, fmt.Errorf("%w: failed to get horarios: %v", ErrInternal, err)
	}

	bands := domain.ClassifyRange(from, to, horarios, now)

	days := make([]Day, len(bands))
	for i, b := range bands {
		days[i] = Day{
			Fecha: b.Fecha,
			Band:  string(b.Band),
			Color: b.Band.Color(),
		}
	}

	uc.logger.Info("GetAvailability: classified %d days using %d horarios", len(days), len(horarios))

	return &Response{
		From: from,
		To:   to,
		Days: days,
	}, nil
}

// resolveRange подставляет границы диапазона по умолчанию
func resolveRange(req *Request, now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if req.From != nil {
		from = time.Date(req.From.Year(), req.From.Month(), req.From.Day(), 0, 0, 0, 0, req.From.Location())
	}

	to := from.AddDate(0, 0, domain.DefaultCalendarRangeDays)
	if req.To != nil {
		to = time.Date(req.To.Year(), req.To.Month(), req.To.Day(), 0, 0, 0, 0, req.To.Location())
	}

	return from, to
}
