//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_test
package review

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	GetByProduct(ctx context.Context, productID int64) ([]entities.Review, error)
	Create(ctx context.Context, review entities.Review) error
	// Update и SoftDelete затрагивают только неудаленные отзывы владельца.
	Update(ctx context.Context, buyerID int64, reviewModify entities.ReviewModify) error
	SoftDelete(ctx context.Context, buyerID, reviewID int64) error
}
