package banks

import (
	"context"
	"fmt"

	"github.com/fiestaspark/FP-ReservationService/internal/service/banks/models"
)

// Service сервис справочника банковских счетов для переводов
type Service struct {
	bankRepo BankRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса банковских счетов
func NewService(bankRepo BankRepository, logger Logger) *Service {
	return &Service{
		bankRepo: bankRepo,
		logger:   logger,
	}
}

// ListActive возвращает активные счета, на которые принимаются переводы
func (s *Service) ListActive(ctx context.Context) (*models.CuentaListResponse, error) {
	cuentas, err := s.bankRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListActive: fetched %d active bank accounts", len(cuentas))
	return models.FromDomainCuentas(cuentas), nil
}
