package product

import (
	"context"
	"fmt"

	"storefront/internal/entities"
)

type Product struct {
	repository Repository
}

func New(repository Repository) *Product {
	return &Product{
		repository: repository,
	}
}

func (s *Product) GetProducts(ctx context.Context, limit int64) ([]entities.Product, error) {
	// невалидный лимит просто игнорируем, как и отсутствующий
	if limit < 0 {
		limit = 0
	}

	products, err := s.repository.GetActive(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

func (s *Product) GetProduct(ctx context.Context, id int64) (*entities.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidProductID
	}

	product, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}
