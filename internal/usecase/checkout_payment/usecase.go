package checkout_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/proofstore"
	reservaRepo "github.com/fiestaspark/FP-ReservationService/internal/infra/storage/reservation"
)

// UseCase use case оформления оплаты резервации.
// Фиксирует способ оплаты и компробант, но не меняет статус: подтверждение
// остается за персоналом после сверки перевода.
type UseCase struct {
	reservaRepo ReservaRepository
	proofStore  ProofStore
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservaRepo ReservaRepository, proofStore ProofStore, logger Logger) *UseCase {
	return &UseCase{
		reservaRepo: reservaRepo,
		proofStore:  proofStore,
		logger:      logger,
	}
}

// Execute выполняет use case оформления оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckoutPayment: reserva id=%d, metodo=%s, hasProof=%v",
		req.ReservaID, req.Metodo, req.Proof != nil)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckoutPayment: validation failed: %v", err)
		return nil, err
	}

	metodo := domain.MetodoPago(req.Metodo)

	// 2. Компробант: обязателен для переводов, недопустим для наличных
	if err := validateProof(metodo, req.Proof); err != nil {
		uc.logger.Warn("CheckoutPayment: proof validation failed for reserva id=%d: %v", req.ReservaID, err)
		return nil, err
	}

	// 3. Загружаем резервацию: код нужен для имени файла компробанта
	reserva, err := uc.reservaRepo.GetByID(ctx, req.ReservaID)
	if err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNotFound) {
			uc.logger.Warn("CheckoutPayment: reserva id=%d not found", req.ReservaID)
			return nil, ErrReservaNotFound
		}
		uc.logger.Error("CheckoutPayment: repository error for reserva id=%d: %v", req.ReservaID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// Оплату оформляет владелец резервации либо персонал
	if !req.Staff && reserva.ClienteID != req.ClienteID {
		uc.logger.Warn("CheckoutPayment: cliente=%d attempted to pay reserva id=%d of cliente=%d",
			req.ClienteID, req.ReservaID, reserva.ClienteID)
		return nil, ErrAccessDenied
	}

	if !reserva.IsPending() {
		uc.logger.Warn("CheckoutPayment: reserva id=%d is not pending, estado=%s", req.ReservaID, reserva.Estado)
		return nil, ErrIllegalTransition
	}

	// 4. Сохраняем компробант на диск
	var comprobante *string
	if req.Proof != nil {
		path, err := uc.proofStore.Save(reserva.Codigo, req.Proof.ContentType, req.Proof.Data)
		if err != nil {
			if errors.Is(err, proofstore.ErrTooLarge) {
				return nil, ErrProofTooLarge
			}
			uc.logger.Error("CheckoutPayment: failed to save proof for reserva id=%d: %v", req.ReservaID, err)
			return nil, fmt.Errorf("%w: failed to save proof: %v", ErrInternal, err)
		}
		comprobante = &path
	}

	// 5. Фиксируем способ оплаты; guarded-обновление отсекает гонку
	// с параллельным переходом статуса
	if err := uc.reservaRepo.SetPago(ctx, req.ReservaID, metodo, comprobante); err != nil {
		if errors.Is(err, reservaRepo.ErrNoTransition) {
			uc.logger.Warn("CheckoutPayment: reserva id=%d left pending state concurrently", req.ReservaID)
			return nil, ErrIllegalTransition
		}
		uc.logger.Error("CheckoutPayment: failed to set pago for reserva id=%d: %v", req.ReservaID, err)
		return nil, fmt.Errorf("%w: failed to set pago: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckoutPayment: successfully recorded %s payment for reserva id=%d",
		metodo, req.ReservaID)

	return &Response{
		ReservaID:       reserva.ID,
		Codigo:          reserva.Codigo,
		Metodo:          string(metodo),
		ComprobantePago: comprobante,
		Estado:          string(domain.StatusPendiente),
	}, nil
}
