// Package cartstore хранит корзины сессий в Redis
//
// Корзина принадлежит ровно одной сессии клиента и живет до чекаута либо до
// истечения TTL. Ключ carrito:{sessionID}, значение - JSON корзины.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// Store хранилище корзин поверх Redis
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает новое хранилище корзин
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// key формирует ключ корзины сессии
func key(sessionID int64) string {
	return fmt.Sprintf("carrito:%d", sessionID)
}

// Get получает корзину сессии
func (s *Store) Get(ctx context.Context, sessionID int64) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis get: %v", ErrInternal, err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal cart: %v", ErrInternal, err)
	}

	return &cart, nil
}

// Save сохраняет корзину сессии и продлевает её TTL
func (s *Store) Save(ctx context.Context, sessionID int64, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal cart: %v", ErrInternal, err)
	}

	if err := s.client.Set(ctx, key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - redis set: %v", ErrInternal, err)
	}

	return nil
}

// Delete удаляет корзину сессии.
// Вызывается после успешного переноса строк корзины в резервацию.
func (s *Store) Delete(ctx context.Context, sessionID int64) error {
	if err := s.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis del: %v", ErrInternal, err)
	}
	return nil
}
