package cart

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/entities"
)

type Cart struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Cart {
	return &Cart{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Cart) GetCart(ctx context.Context, buyerID int64) ([]entities.CartLine, error) {
	lines, err := s.repository.GetLines(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return lines, nil
}

func (s *Cart) AddProduct(ctx context.Context, buyerID, productID int64) error {
	if productID <= 0 {
		return ErrInvalidProductID
	}

	if err := s.repository.Upsert(ctx, buyerID, productID); err != nil {
		return fmt.Errorf("add product to cart: %w", err)
	}
	return nil
}

func (s *Cart) IncrementItem(ctx context.Context, buyerID, productID int64) error {
	if productID <= 0 {
		return ErrInvalidProductID
	}

	if err := s.repository.Increment(ctx, buyerID, productID); err != nil {
		return fmt.Errorf("increment cart item: %w", err)
	}
	return nil
}

// DecrementItem уменьшает количество, при нуле удаляет строку целиком.
// Декремент и удаление - одна транзакция.
func (s *Cart) DecrementItem(ctx context.Context, buyerID, productID int64) error {
	if productID <= 0 {
		return ErrInvalidProductID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		remaining, err := s.repository.Decrement(ctx, buyerID, productID)
		if err != nil {
			return fmt.Errorf("decrement cart item: %w", err)
		}

		if remaining <= 0 {
			if err := s.repository.Remove(ctx, buyerID, productID); err != nil {
				return fmt.Errorf("remove empty cart item: %w", err)
			}
		}
		return nil
	})
}

func (s *Cart) RemoveProduct(ctx context.Context, buyerID, productID int64) error {
	if productID <= 0 {
		return ErrInvalidProductID
	}

	if err := s.repository.Remove(ctx, buyerID, productID); err != nil {
		return fmt.Errorf("remove product from cart: %w", err)
	}
	return nil
}

func (s *Cart) ClearCart(ctx context.Context, buyerID int64) error {
	if err := s.repository.Clear(ctx, buyerID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// CleanupStaleItems удаляет брошенные позиции корзин старше maxAge.
func (s *Cart) CleanupStaleItems(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge)

	removed, err := s.repository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup stale cart items: %w", err)
	}
	return removed, nil
}
