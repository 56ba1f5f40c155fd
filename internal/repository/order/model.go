package order

import "time"

type OrderSummaryDB struct {
	ID            int64
	TotalAmount   int64
	Status        string
	PaymentMethod string
	CreatedAt     time.Time
	DeliveredAt   *time.Time
	TotalItems    int64
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	PostalCode    string
	AddressLine   string
	City          string
	State         string
}

type OrderDetailDB struct {
	ID              int64
	DeliveryCharges int64
	TotalAmount     int64
	Status          string
	PaymentMethod   string
	CreatedAt       time.Time
	DeliveredAt     *time.Time
}

type OrderDetailItemDB struct {
	ID          int64
	ProductID   int64
	ProductName string
	Images      []string
	Quantity    int64
	Price       int64
}

type OrderItemDB struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	Price     int64
}
