package entities

import "time"

type Product struct {
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

// CheckoutProduct - срез полей продукта, который нужен при оформлении заказа.
type CheckoutProduct struct {
	ID            int64
	Price         int64
	StockQuantity int64
	IsActive      bool
}
