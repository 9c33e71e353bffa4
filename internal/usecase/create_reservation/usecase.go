package create_reservation

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/cartstore"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/events"
	reservaRepo "github.com/fiestaspark/FP-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/fiestaspark/FP-ReservationService/internal/infra/storage/slot"
	catalogClient "github.com/fiestaspark/FP-ReservationService/internal/integrations/catalogservice"
)

// codigoAlphabet алфавит публичных кодов резерваций.
// Исключены похожие символы (0/O, 1/I), коды диктуются по телефону.
const codigoAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// UseCase use case для создания резервации.
// Обслуживает оба пути оформления: прямой (строки в теле запроса)
// и из корзины клиента.
type UseCase struct {
	reservaRepo   ReservaRepository
	slotRepo      SlotRepository
	cartStore     CartStore
	catalogClient CatalogClient
	txManager     TransactionManager
	publisher     EventPublisher
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// publisher может быть nil, если публикация событий отключена.
func NewUseCase(
	reservaRepo ReservaRepository,
	slotRepo SlotRepository,
	cartStore CartStore,
	catalogClient CatalogClient,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservaRepo:   reservaRepo,
		slotRepo:      slotRepo,
		cartStore:     cartStore,
		catalogClient: catalogClient,
		txManager:     txManager,
		publisher:     publisher,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания резервации.
// Проверка слота, вставка резервации и списание места выполняются в одной
// serializable транзакции, поэтому место не может уйти в минус при
// конкурентных запросах. Повтор запроса с тем же кодом возвращает ранее
// созданную резервацию без повторного списания.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: cliente=%d, fecha=%s, horario=%d, desdeCarrito=%v",
		req.ClienteID, req.FechaEvento.Format(domain.DateFormat), req.HorarioID, req.DesdeCarrito)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата события не может быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.FechaEvento, now); err != nil {
		uc.logger.Warn("CreateReservation: fecha=%s is in the past", req.FechaEvento.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Собираем строки детализации: из корзины или из тела запроса
	detalles, err := uc.buildDetalles(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Пересчитываем итог на сервере и сверяем с заявленным
	var total float64
	for _, d := range detalles {
		total += d.Subtotal
	}
	if err := validateTotal(req.Total, total); err != nil {
		uc.logger.Warn("CreateReservation: total mismatch for cliente=%d: %v", req.ClienteID, err)
		return nil, err
	}

	// 5. Определяем публичный код резервации
	codigo, err := uc.resolveCodigo(req)
	if err != nil {
		return nil, err
	}

	var result *domain.Reserva

	// 6. Слот и резервация в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Блокируем слот и проверяем его принадлежность дате
		horario, err := uc.slotRepo.GetByID(txCtx, req.HorarioID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrHorarioNotFound) {
				uc.logger.Warn("CreateReservation: horario id=%d not found", req.HorarioID)
				return ErrInvalidSlot
			}
			uc.logger.Error("CreateReservation: failed to get horario id=%d: %v", req.HorarioID, err)
			return fmt.Errorf("%w: failed to get horario: %v", ErrInternal, err)
		}

		if !horario.MatchesDate(req.FechaEvento) {
			uc.logger.Warn("CreateReservation: horario id=%d does not belong to fecha=%s",
				req.HorarioID, req.FechaEvento.Format(domain.DateFormat))
			return ErrInvalidSlot
		}

		if horario.IsFull() {
			uc.logger.Warn("CreateReservation: horario id=%d is full", req.HorarioID)
			return ErrSlotUnavailable
		}

		// 6.2. Вставляем резервацию до списания места: дубликат кода
		// откатывает транзакцию, не трогая слот
		reserva := &domain.Reserva{
			Codigo:          codigo,
			ClienteID:       req.ClienteID,
			FechaEvento:     req.FechaEvento,
			HorarioID:       req.HorarioID,
			DireccionEvento: strings.TrimSpace(req.DireccionEvento),
			Detalles:        detalles,
			Total:           total,
			Estado:          domain.StatusPendiente,
		}

		created, err := uc.reservaRepo.Create(txCtx, reserva)
		if err != nil {
			if errors.Is(err, reservaRepo.ErrDuplicateCodigo) {
				return reservaRepo.ErrDuplicateCodigo
			}
			uc.logger.Error("CreateReservation: failed to create reserva: %v", err)
			return fmt.Errorf("%w: failed to create reserva: %v", ErrInternal, err)
		}

		// 6.3. Списываем место
		if err := uc.slotRepo.DecrementCapacity(txCtx, req.HorarioID); err != nil {
			if errors.Is(err, slotRepo.ErrNoCapacity) {
				uc.logger.Warn("CreateReservation: horario id=%d ran out of capacity", req.HorarioID)
				return ErrSlotUnavailable
			}
			uc.logger.Error("CreateReservation: failed to decrement capacity for horario id=%d: %v",
				req.HorarioID, err)
			return fmt.Errorf("%w: failed to decrement capacity: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	// 7. Повтор с тем же кодом: возвращаем ранее созданную резервацию
	if errors.Is(err, reservaRepo.ErrDuplicateCodigo) {
		uc.logger.Info("CreateReservation: codigo=%s already registered, returning existing reserva", codigo)
		existing, getErr := uc.reservaRepo.GetByCodigo(ctx, codigo)
		if getErr != nil {
			uc.logger.Error("CreateReservation: failed to load existing reserva codigo=%s: %v", codigo, getErr)
			return nil, fmt.Errorf("%w: failed to load existing reserva: %v", ErrInternal, getErr)
		}
		// Повтор засчитывается только владельцу кода: чужая резервация
		// наружу не отдается
		if existing.ClienteID != req.ClienteID {
			uc.logger.Warn("CreateReservation: codigo=%s belongs to cliente=%d, requested by cliente=%d",
				codigo, existing.ClienteID, req.ClienteID)
			return nil, ErrCodigoTaken
		}
		return toResponse(existing, true), nil
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reserva id=%d, codigo=%s",
		result.ID, result.Codigo)

	// 8. Пострансакционные шаги: очистка корзины и событие.
	// Оба шага не влияют на исход операции.
	if req.DesdeCarrito {
		if err := uc.cartStore.Delete(ctx, req.ClienteID); err != nil {
			uc.logger.Warn("CreateReservation: failed to clear cart for cliente=%d: %v", req.ClienteID, err)
		}
	}
	uc.publishCreated(ctx, result)

	return toResponse(result, false), nil
}

// buildDetalles собирает строки детализации будущей резервации
func (uc *UseCase) buildDetalles(ctx context.Context, req *Request) ([]domain.DetalleReserva, error) {
	if req.DesdeCarrito {
		cart, err := uc.cartStore.Get(ctx, req.ClienteID)
		if err != nil {
			if errors.Is(err, cartstore.ErrCartNotFound) {
				uc.logger.Warn("CreateReservation: cart not found for cliente=%d", req.ClienteID)
				return nil, ErrEmptyCart
			}
			uc.logger.Error("CreateReservation: cart store error for cliente=%d: %v", req.ClienteID, err)
			return nil, fmt.Errorf("%w: cart store error: %v", ErrInternal, err)
		}
		if cart.IsEmpty() {
			uc.logger.Warn("CreateReservation: cart is empty for cliente=%d", req.ClienteID)
			return nil, ErrEmptyCart
		}
		return cart.ToDetalles(), nil
	}

	// Прямой путь: цены и названия берутся из каталога, не из запроса
	detalles := make([]domain.DetalleReserva, 0, len(req.Detalles))
	for _, line := range req.Detalles {
		tipo := domain.TipoItem(line.Tipo)

		item, err := uc.catalogClient.GetItem(ctx, tipo, line.ItemID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrItemNotFound) || errors.Is(err, catalogClient.ErrItemExpired) {
				uc.logger.Warn("CreateReservation: catalog item tipo=%s id=%d unavailable: %v",
					line.Tipo, line.ItemID, err)
				return nil, ErrItemNotFound
			}
			uc.logger.Error("CreateReservation: catalog error for tipo=%s id=%d: %v", line.Tipo, line.ItemID, err)
			return nil, fmt.Errorf("%w: catalog error: %v", ErrInternal, err)
		}

		detalles = append(detalles, domain.DetalleReserva{
			Tipo:           tipo,
			ItemID:         item.ID,
			NombreItem:     item.Nombre,
			Cantidad:       line.Cantidad,
			PrecioUnitario: item.UnitPrice,
			Subtotal:       item.UnitPrice * float64(line.Cantidad),
		})
	}

	return detalles, nil
}

// resolveCodigo возвращает код из запроса или генерирует новый
func (uc *UseCase) resolveCodigo(req *Request) (string, error) {
	if req.Codigo != nil {
		return strings.ToUpper(strings.TrimSpace(*req.Codigo)), nil
	}

	codigo, err := generateCodigo(domain.ReservaCodeLength)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to generate codigo: %v", err)
		return "", fmt.Errorf("%w: failed to generate codigo: %v", ErrInternal, err)
	}

	return codigo, nil
}

// publishCreated публикует событие о созданной резервации
func (uc *UseCase) publishCreated(ctx context.Context, reserva *domain.Reserva) {
	if uc.publisher == nil {
		return
	}

	event := events.ReservaEvent{
		ReservaID:   reserva.ID,
		Codigo:      reserva.Codigo,
		ClienteID:   reserva.ClienteID,
		FechaEvento: reserva.FechaEvento.Format(domain.DateFormat),
		Total:       reserva.Total,
		Estado:      string(reserva.Estado),
		OccurredAt:  time.Now().UTC(),
	}

	if err := uc.publisher.Publish(ctx, events.QueueReservaCreada, event); err != nil {
		uc.logger.Warn("CreateReservation: failed to publish event for reserva id=%d: %v", reserva.ID, err)
	}
}

// generateCodigo генерирует криптослучайный публичный код резервации
func generateCodigo(length int) (string, error) {
	var sb strings.Builder
	sb.Grow(length)

	max := big.NewInt(int64(len(codigoAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codigoAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

// toResponse конвертирует domain модель в response
func toResponse(r *domain.Reserva, alreadyExisted bool) *Response {
	resp := &Response{
		ID:              r.ID,
		Codigo:          r.Codigo,
		ClienteID:       r.ClienteID,
		FechaEvento:     r.FechaEvento,
		HorarioID:       r.HorarioID,
		DireccionEvento: r.DireccionEvento,
		Detalles:        make([]DetalleResult, len(r.Detalles)),
		Total:           r.Total,
		Estado:          string(r.Estado),
		CreadaEn:        r.CreadaEn,
		AlreadyExisted:  alreadyExisted,
	}

	for i, d := range r.Detalles {
		resp.Detalles[i] = DetalleResult{
			ID:             d.ID,
			Tipo:           string(d.Tipo),
			ItemID:         d.ItemID,
			NombreItem:     d.NombreItem,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		}
	}

	return resp
}
