package session

import (
	"context"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// TokenStore - минимальный срез хранилища, нужный резолверу.
type TokenStore interface {
	Get(ctx context.Context, token string) (int64, error)
}

// Resolver превращает заголовок Authorization в идентификатор покупателя.
type Resolver struct {
	store TokenStore
}

func NewResolver(store TokenStore) *Resolver {
	return &Resolver{
		store: store,
	}
}

func (r *Resolver) BuyerID(req *http.Request) (int64, error) {
	header := req.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return 0, ErrNoSession
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if token == "" {
		return 0, ErrNoSession
	}

	return r.store.Get(req.Context(), token)
}

// Token извлекает сырой токен, нужен для выхода из аккаунта.
func (r *Resolver) Token(req *http.Request) (string, error) {
	header := req.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrNoSession
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if token == "" {
		return "", ErrNoSession
	}

	return token, nil
}
