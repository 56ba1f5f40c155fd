package buyer

import "time"

type BuyerDB struct {
	ID         int64
	Email      string
	Name       string
	ProfilePic string
	CreatedAt  time.Time
}
