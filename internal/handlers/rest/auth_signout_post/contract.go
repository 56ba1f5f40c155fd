//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_signout_post_test
package auth_signout_post

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

type TokenResolver interface {
	Token(req *http.Request) (string, error)
}

type Service interface {
	SignOut(ctx context.Context, token string) error
}
