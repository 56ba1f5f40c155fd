//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	// Upsert создает покупателя по email или обновляет имя и аватар.
	Upsert(ctx context.Context, profile entities.GoogleProfile) (*entities.Buyer, error)
}

type SessionStore interface {
	Create(ctx context.Context, buyerID int64) (string, error)
	Delete(ctx context.Context, token string) error
}
