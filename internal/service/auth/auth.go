package auth

import (
	"context"
	"fmt"

	"storefront/internal/entities"
)

type Auth struct {
	repository Repository
	sessions   SessionStore
}

func New(repository Repository, sessions SessionStore) *Auth {
	return &Auth{
		repository: repository,
		sessions:   sessions,
	}
}

// SignIn принимает уже проверенный Google-профиль, заводит покупателя при
// первом входе и выдает сессионный токен.
func (s *Auth) SignIn(ctx context.Context, profile entities.GoogleProfile) (*entities.Session, error) {
	if !isValidEmail(profile.Email) || !isValidName(profile.Name) {
		return nil, ErrInvalidProfile
	}

	buyer, err := s.repository.Upsert(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("upsert buyer: %w", err)
	}

	token, err := s.sessions.Create(ctx, buyer.ID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &entities.Session{
		Token:   token,
		BuyerID: buyer.ID,
		Buyer:   buyer,
	}, nil
}

func (s *Auth) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
