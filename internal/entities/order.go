package entities

import "time"

type Order struct {
	ID              int64
	BuyerID         int64
	AddressID       int64
	DeliveryCharges int64
	TotalAmount     int64
	Status          OrderStatusType
	PaymentMethod   PaymentMethodType
	CreatedAt       time.Time
	DeliveredAt     *time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderShipped   OrderStatusType = "shipped"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type PaymentMethodType string

const (
	PaymentCashOnDelivery PaymentMethodType = "cash_on_delivery"
)

func (p PaymentMethodType) String() string {
	return string(p)
}

// OrderItem - строка заказа, снимок цены на момент оформления.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	Price     int64
}

// OrderSummary - заказ в списке истории покупателя.
type OrderSummary struct {
	ID            int64
	TotalAmount   int64
	Status        OrderStatusType
	PaymentMethod PaymentMethodType
	OrderDate     time.Time
	DeliveryDate  *time.Time
	TotalItems    int64
	Address       Address
}

// OrderDetail - заказ со строками и товарами для страницы заказа.
type OrderDetail struct {
	ID              int64
	DeliveryCharges int64
	TotalAmount     int64
	Status          OrderStatusType
	PaymentMethod   PaymentMethodType
	OrderDate       time.Time
	DeliveryDate    *time.Time
	Items           []OrderDetailItem
}

type OrderDetailItem struct {
	ID          int64
	ProductID   int64
	ProductName string
	Images      []string
	Quantity    int64
	Price       int64
}

// Checkout - проверенный запрос на оформление заказа.
type Checkout struct {
	Address Address
	Items   []CheckoutItem
}

type CheckoutItem struct {
	ProductID int64
	Quantity  int64
}

type OrderModify struct {
	ID     *int64
	Status *OrderStatusType
}
