// Package draftstore хранит черновики бронирования в Redis. Черновик живет
// от proceed до submit; TTL сам убирает брошенные черновики, отдельная
// очистка не нужна.
package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

const keyPrefix = "draft:"

// Store хранилище черновиков бронирования
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает новое хранилище черновиков с заданным TTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Save сохраняет черновик под его токеном. Повторное сохранение того же
// токена перезаписывает черновик и сбрасывает TTL.
func (s *Store) Save(ctx context.Context, draft *domain.BookingDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, keyPrefix+draft.Token, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - %v", ErrStore, err)
	}
	return nil
}

// Get возвращает черновик по токену или ErrDraftNotFound, если токен
// неизвестен или TTL истек.
func (s *Store) Get(ctx context.Context, token string) (*domain.BookingDraft, error) {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("%w: Get - %v", ErrStore, err)
	}

	var draft domain.BookingDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &draft, nil
}

// Delete удаляет черновик. Отсутствующий токен ошибкой не считается:
// черновик мог истечь сам.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %v", ErrStore, err)
	}
	return nil
}
