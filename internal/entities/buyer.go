package entities

import "time"

type Buyer struct {
	ID         int64
	Email      string
	Name       string
	ProfilePic string
	CreatedAt  time.Time
}

// GoogleProfile - уже проверенный профиль от Google-провайдера.
// Сам OAuth handshake живет снаружи, нам приходит только результат.
type GoogleProfile struct {
	Email      string
	Name       string
	ProfilePic string
}

type Session struct {
	Token   string
	BuyerID int64
	Buyer   *Buyer
}
