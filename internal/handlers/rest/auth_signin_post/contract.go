//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_signin_post_test
package auth_signin_post

import (
	"context"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SignIn(ctx context.Context, profile entities.GoogleProfile) (*entities.Session, error)
}
