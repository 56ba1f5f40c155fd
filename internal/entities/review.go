package entities

import "time"

type Review struct {
	ID        int64
	ProductID int64
	BuyerID   int64
	BuyerName string
	Rating    int64
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReviewModify struct {
	ID        *int64
	ProductID *int64
	Rating    *int64
	Comment   *string
}
