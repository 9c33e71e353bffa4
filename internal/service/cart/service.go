package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/internal/infra/cartstore"
	"github.com/fiestaspark/FP-ReservationService/internal/integrations/catalogservice"
	"github.com/fiestaspark/FP-ReservationService/internal/service/cart/models"
)

// Service сервис корзины клиента.
// Цена позиции фиксируется в момент добавления: последующие изменения
// в каталоге не влияют на уже добавленные строки.
type Service struct {
	store         CartStore
	catalogClient CatalogClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса корзины
func NewService(store CartStore, catalogClient CatalogClient, logger Logger) *Service {
	return &Service{
		store:         store,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// AddItem добавляет позицию каталога в корзину клиента.
// Название и цена позиции берутся из каталога, а не из запроса.
func (s *Service) AddItem(ctx context.Context, req *models.AddItemRequest) (*models.CartResponse, error) {
	s.logger.Info("AddItem: adding item tipo=%s id=%d x%d for cliente=%d",
		req.Tipo, req.ItemID, req.Cantidad, req.ClienteID)

	if req.Cantidad <= 0 {
		s.logger.Warn("AddItem: invalid cantidad=%d for cliente=%d", req.Cantidad, req.ClienteID)
		return nil, ErrInvalidQuantity
	}

	tipo := domain.TipoItem(req.Tipo)
	if !domain.IsValidTipoItem(tipo) {
		s.logger.Warn("AddItem: invalid tipo=%s for cliente=%d", req.Tipo, req.ClienteID)
		return nil, ErrInvalidItemKind
	}

	item, err := s.catalogClient.GetItem(ctx, tipo, req.ItemID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrItemNotFound) || errors.Is(err, catalogservice.ErrItemExpired) {
			s.logger.Warn("AddItem: catalog item tipo=%s id=%d unavailable: %v", req.Tipo, req.ItemID, err)
			return nil, ErrItemNotFound
		}
		s.logger.Error("AddItem: catalog error for tipo=%s id=%d: %v", req.Tipo, req.ItemID, err)
		return nil, fmt.Errorf("%w: AddItem - catalog error: %v", ErrInternal, err)
	}

	cart, err := s.getOrCreate(ctx, req.ClienteID)
	if err != nil {
		return nil, err
	}

	cart.Add(tipo, item.ID, item.Nombre, req.Cantidad, item.UnitPrice)

	if err := s.store.Save(ctx, req.ClienteID, cart); err != nil {
		s.logger.Error("AddItem: failed to save cart for cliente=%d: %v", req.ClienteID, err)
		return nil, fmt.Errorf("%w: AddItem - store error: %v", ErrInternal, err)
	}

	s.logger.Info("AddItem: cart for cliente=%d now has %d lines, total=%.2f",
		req.ClienteID, len(cart.Items), cart.Total())
	return models.FromDomainCart(cart), nil
}

// RemoveItem удаляет строку корзины по её идентификатору
func (s *Service) RemoveItem(ctx context.Context, clienteID int64, itemID int64) (*models.CartResponse, error) {
	s.logger.Info("RemoveItem: removing line id=%d for cliente=%d", itemID, clienteID)

	cart, err := s.store.Get(ctx, clienteID)
	if err != nil {
		if errors.Is(err, cartstore.ErrCartNotFound) {
			s.logger.Warn("RemoveItem: cart not found for cliente=%d", clienteID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("RemoveItem: store error for cliente=%d: %v", clienteID, err)
		return nil, fmt.Errorf("%w: RemoveItem - store error: %v", ErrInternal, err)
	}

	if !cart.Remove(itemID) {
		s.logger.Warn("RemoveItem: line id=%d not found for cliente=%d", itemID, clienteID)
		return nil, ErrItemNotFound
	}

	if err := s.store.Save(ctx, clienteID, cart); err != nil {
		s.logger.Error("RemoveItem: failed to save cart for cliente=%d: %v", clienteID, err)
		return nil, fmt.Errorf("%w: RemoveItem - store error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveItem: cart for cliente=%d now has %d lines", clienteID, len(cart.Items))
	return models.FromDomainCart(cart), nil
}

// GetCart возвращает содержимое корзины клиента.
// Отсутствующая корзина отдается как пустая, а не как ошибка.
func (s *Service) GetCart(ctx context.Context, clienteID int64) (*models.CartResponse, error) {
	cart, err := s.store.Get(ctx, clienteID)
	if err != nil {
		if errors.Is(err, cartstore.ErrCartNotFound) {
			return models.FromDomainCart(domain.NewCart()), nil
		}
		s.logger.Error("GetCart: store error for cliente=%d: %v", clienteID, err)
		return nil, fmt.Errorf("%w: GetCart - store error: %v", ErrInternal, err)
	}

	return models.FromDomainCart(cart), nil
}

// Clear удаляет корзину клиента целиком
func (s *Service) Clear(ctx context.Context, clienteID int64) error {
	if err := s.store.Delete(ctx, clienteID); err != nil {
		s.logger.Error("Clear: failed to delete cart for cliente=%d: %v", clienteID, err)
		return fmt.Errorf("%w: Clear - store error: %v", ErrInternal, err)
	}
	return nil
}

// getOrCreate возвращает корзину клиента, создавая пустую при отсутствии
func (s *Service) getOrCreate(ctx context.Context, clienteID int64) (*domain.Cart, error) {
	cart, err := s.store.Get(ctx, clienteID)
	if err != nil {
		if errors.Is(err, cartstore.ErrCartNotFound) {
			return domain.NewCart(), nil
		}
		s.logger.Error("getOrCreate: store error for cliente=%d: %v", clienteID, err)
		return nil, fmt.Errorf("%w: getOrCreate - store error: %v", ErrInternal, err)
	}
	return cart, nil
}
