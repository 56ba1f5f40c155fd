package product

import "time"

type ProductDB struct {
	ID            int64
	Name          string
	Description   string
	Price         int64
	StockQuantity int64
	Category      string
	Images        []string
	Rating        float64
	IsActive      bool
	SellerID      int64
	SellerName    string
	CreatedAt     time.Time
}

type CheckoutProductDB struct {
	ID            int64
	Price         int64
	StockQuantity int64
	IsActive      bool
}
