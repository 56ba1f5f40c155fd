//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_put_test
package review_put

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
	UpdateReview(ctx context.Context, buyerID int64, reviewModify entities.ReviewModify) error
}
