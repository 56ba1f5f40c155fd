package auth

import "errors"

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrInvalidToken   = errors.New("invalid session token")
)
