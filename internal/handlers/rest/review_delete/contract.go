//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=review_delete_test
package review_delete

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
	DeleteReview(ctx context.Context, buyerID, reviewID int64) error
}
