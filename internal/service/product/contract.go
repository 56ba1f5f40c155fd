//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_test
package product

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	// GetActive возвращает активные неудаленные товары, limit <= 0 - без лимита.
	GetActive(ctx context.Context, limit int64) ([]entities.Product, error)
	GetByID(ctx context.Context, id int64) (*entities.Product, error)
}
