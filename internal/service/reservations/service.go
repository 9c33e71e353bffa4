package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/events"
	reservaRepo "github.com/fiestaspark/FP-ReservationService/internal/infra/storage/reservation"
	"github.com/fiestaspark/FP-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с резервациями
type Service struct {
	reservaRepo ReservaRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса резерваций.
// publisher может быть nil, если публикация событий отключена.
func NewService(
	reservaRepo ReservaRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		reservaRepo: reservaRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetByID получает резервацию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservaResponse, error) {
	s.logger.Info("GetByID: fetching reserva id=%d", id)

	reserva, err := s.reservaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNotFound) {
			s.logger.Warn("GetByID: reserva id=%d not found", id)
			return nil, ErrReservaNotFound
		}
		s.logger.Error("GetByID: repository error for reserva id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReserva(reserva), nil
}

// GetByCodigo получает резервацию по публичному коду
func (s *Service) GetByCodigo(ctx context.Context, codigo string) (*models.ReservaResponse, error) {
	s.logger.Info("GetByCodigo: fetching reserva codigo=%s", codigo)

	reserva, err := s.reservaRepo.GetByCodigo(ctx, codigo)
	if err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNotFound) {
			s.logger.Warn("GetByCodigo: reserva codigo=%s not found", codigo)
			return nil, ErrReservaNotFound
		}
		s.logger.Error("GetByCodigo: repository error for codigo=%s: %v", codigo, err)
		return nil, fmt.Errorf("%w: GetByCodigo - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReserva(reserva), nil
}

// List получает список резерваций с фильтрацией по клиенту и статусу.
// Скрытые резервации исключаются, пока фильтр явно не попросит их включить.
func (s *Service) List(ctx context.Context, req *models.ListReservasRequest) (*models.ReservaListResponse, error) {
	s.logger.Info("List: fetching reservas, cliente=%v, estado=%v", req.ClienteID, req.Estado)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid estado filter: %v", err)
		return nil, fmt.Errorf("%w: invalid estado", ErrInvalidStatus)
	}

	reservas, err := s.reservaRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservas", len(reservas))
	return models.FromDomainReservaList(reservas), nil
}

// ListPending получает резервации, ожидающие подтверждения персоналом
func (s *Service) ListPending(ctx context.Context) (*models.ReservaListResponse, error) {
	estado := domain.StatusPendiente
	return s.List(ctx, &models.ListReservasRequest{Estado: (*string)(&estado)})
}

// Approve подтверждает резервацию по ссылке на банковскую транзакцию.
// Пустая ссылка отклоняется до любого обращения к хранилищу, поэтому
// состояние резервации в этом случае не меняется.
func (s *Service) Approve(ctx context.Context, id int64, transaccionID string) (*models.ReservaResponse, error) {
	s.logger.Info("Approve: approving reserva id=%d", id)

	if strings.TrimSpace(transaccionID) == "" {
		s.logger.Warn("Approve: empty transaction reference for reserva id=%d", id)
		return nil, ErrMissingTransactionRef
	}

	if err := s.reservaRepo.Approve(ctx, id, transaccionID); err != nil {
		if errors.Is(err, reservaRepo.ErrNoTransition) {
			return nil, s.resolveTransitionError(ctx, "Approve", id)
		}
		s.logger.Error("Approve: repository error for reserva id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Approve - repository error: %v", ErrInternal, err)
	}

	reserva, err := s.reservaRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Approve: failed to reload reserva id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Approve - reload error: %v", ErrInternal, err)
	}

	s.publishEvent(ctx, events.QueueReservaAprobada, reserva)

	s.logger.Info("Approve: successfully approved reserva id=%d, transaccion=%s", id, transaccionID)
	return models.FromDomainReserva(reserva), nil
}

// Annul отменяет ожидающую резервацию и возвращает место в слот расписания
func (s *Service) Annul(ctx context.Context, id int64) (*models.ReservaResponse, error) {
	s.logger.Info("Annul: annulling reserva id=%d", id)

	reserva, err := s.transition(ctx, "Annul", id, domain.StatusAnulada)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.QueueReservaAnulada, reserva)

	s.logger.Info("Annul: successfully annulled reserva id=%d", id)
	return models.FromDomainReserva(reserva), nil
}

// Hide скрывает ожидающую резервацию из клиентских списков.
// Скрытие освобождает место так же, как отмена: скрытая резервация
// никогда не будет подтверждена.
func (s *Service) Hide(ctx context.Context, id int64) error {
	s.logger.Info("Hide: hiding reserva id=%d", id)

	if _, err := s.transition(ctx, "Hide", id, domain.StatusEliminada); err != nil {
		return err
	}

	s.logger.Info("Hide: successfully hid reserva id=%d", id)
	return nil
}

// transition переводит ожидающую резервацию в терминальное состояние и
// возвращает место в слот. Обновление и возврат места выполняются в одной
// serializable транзакции: первый успевший переход выигрывает, проигравший
// получает ErrIllegalTransition.
func (s *Service) transition(ctx context.Context, op string, id int64, estado domain.ReservaStatus) (*domain.Reserva, error) {
	var reserva *domain.Reserva

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		current, err := s.reservaRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservaRepo.ErrReservaNotFound) {
				return ErrReservaNotFound
			}
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		if err := s.reservaRepo.UpdateEstado(ctx, id, estado); err != nil {
			if errors.Is(err, reservaRepo.ErrNoTransition) {
				return ErrIllegalTransition
			}
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		if err := s.slotRepo.IncrementCapacity(ctx, current.HorarioID); err != nil {
			return fmt.Errorf("%w: %s - release slot capacity: %v", ErrInternal, op, err)
		}

		current.Estado = estado
		reserva = current
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservaNotFound):
			s.logger.Warn("%s: reserva id=%d not found", op, id)
		case errors.Is(err, ErrIllegalTransition):
			s.logger.Warn("%s: reserva id=%d is not pending", op, id)
		default:
			s.logger.Error("%s: transaction failed for reserva id=%d: %v", op, id, err)
		}
		return nil, err
	}

	return reserva, nil
}

// resolveTransitionError различает "не найдена" и "уже в терминальном состоянии"
// после неуспешного guarded-обновления
func (s *Service) resolveTransitionError(ctx context.Context, op string, id int64) error {
	if _, err := s.reservaRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNotFound) {
			s.logger.Warn("%s: reserva id=%d not found", op, id)
			return ErrReservaNotFound
		}
		s.logger.Error("%s: repository error for reserva id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Warn("%s: reserva id=%d is not pending", op, id)
	return ErrIllegalTransition
}

// publishEvent публикует событие жизненного цикла.
// Ошибка публикации не прерывает операцию: событие лишь уведомление.
func (s *Service) publishEvent(ctx context.Context, queue string, reserva *domain.Reserva) {
	if s.publisher == nil {
		return
	}

	event := events.ReservaEvent{
		ReservaID:     reserva.ID,
		Codigo:        reserva.Codigo,
		ClienteID:     reserva.ClienteID,
		FechaEvento:   reserva.FechaEvento.Format(domain.DateFormat),
		Total:         reserva.Total,
		Estado:        string(reserva.Estado),
		TransaccionID: reserva.TransaccionID,
		OccurredAt:    time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, queue, event); err != nil {
		s.logger.Warn("publishEvent: failed to publish %s for reserva id=%d: %v", queue, reserva.ID, err)
	}
}
