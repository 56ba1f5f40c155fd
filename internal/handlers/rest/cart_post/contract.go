//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_post_test
package cart_post

import (
	"context"
	"net/http"

	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type SessionResolver interface {
	BuyerID(req *http.Request) (int64, error)
}

type Service interface {
	AddProduct(ctx context.Context, buyerID, productID int64) error
	IncrementItem(ctx context.Context, buyerID, productID int64) error
	DecrementItem(ctx context.Context, buyerID, productID int64) error
	RemoveProduct(ctx context.Context, buyerID, productID int64) error
	ClearCart(ctx context.Context, buyerID int64) error
}
