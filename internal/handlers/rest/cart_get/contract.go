//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_get_test
package cart_get

import (
	"context"
	"net/http"

	"storefront/internal/entities"
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
	GetCart(ctx context.Context, buyerID int64) ([]entities.CartLine, error)
}
