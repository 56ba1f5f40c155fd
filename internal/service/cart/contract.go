//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_test
package cart

import (
	"context"
	"time"

	"storefront/internal/entities"
)

type Repository interface {
	GetLines(ctx context.Context, buyerID int64) ([]entities.CartLine, error)

	// Upsert кладет товар в корзину или увеличивает количество на единицу.
	Upsert(ctx context.Context, buyerID, productID int64) error
	Increment(ctx context.Context, buyerID, productID int64) error
	// Decrement уменьшает количество на единицу и возвращает остаток в строке.
	Decrement(ctx context.Context, buyerID, productID int64) (int64, error)
	Remove(ctx context.Context, buyerID, productID int64) error
	Clear(ctx context.Context, buyerID int64) error

	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
