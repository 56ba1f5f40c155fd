package session

import "errors"

var (
	// ErrNoSession - запрос пришел без токена авторизации.
	ErrNoSession = errors.New("no session token")
	// ErrSessionNotFound - токен не найден в хранилище или истек.
	ErrSessionNotFound = errors.New("session not found")
)
