package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Store хранит сессии в Redis, токен живет ровно TTL от момента входа.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func (s *Store) Create(ctx context.Context, buyerID int64) (string, error) {
	token := uuid.NewString()

	err := s.client.Set(ctx, keyPrefix+token, strconv.FormatInt(buyerID, 10), s.ttl).Err()
	if err != nil {
		return "", fmt.Errorf("unexpected session store create error: %w", err)
	}

	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (int64, error) {
	value, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, fmt.Errorf("unexpected session store get error: %w", err)
	}

	buyerID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected session store get error: %w", err)
	}

	return buyerID, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	err := s.client.Del(ctx, keyPrefix+token).Err()
	if err != nil {
		return fmt.Errorf("unexpected session store delete error: %w", err)
	}

	return nil
}
