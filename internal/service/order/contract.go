//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	CreateAddress(ctx context.Context, address entities.Address) (int64, error)
	CreateOrder(ctx context.Context, order entities.Order) (int64, error)
	AddOrderItems(ctx context.Context, orderID int64, items []entities.OrderItem) error

	GetSummaries(ctx context.Context, buyerID int64) ([]entities.OrderSummary, error)
	GetDetail(ctx context.Context, buyerID, orderID int64) (*entities.OrderDetail, error)

	// MarkCancelled переводит pending-заказ покупателя в cancelled.
	// Возвращает false если заказ не найден, чужой или уже не pending.
	MarkCancelled(ctx context.Context, buyerID, orderID int64) (bool, error)
	GetStatusForBuyer(ctx context.Context, buyerID, orderID int64) (entities.OrderStatusType, error)
	GetItems(ctx context.Context, orderID int64) ([]entities.OrderItem, error)

	// UpdateStatus - условный переход from -> to, false при нуле задетых строк.
	UpdateStatus(ctx context.Context, orderID int64, from, to entities.OrderStatusType) (bool, error)
}

type ProductRepository interface {
	GetForCheckout(ctx context.Context, productID int64) (*entities.CheckoutProduct, error)

	// DecrementStock атомарно списывает количество со склада, false если
	// остатка не хватает или товар неактивен.
	DecrementStock(ctx context.Context, productID, quantity int64) (bool, error)

	// IncrementStock атомарно возвращает количество на остаток.
	IncrementStock(ctx context.Context, productID, quantity int64) error
}

type CartRepository interface {
	Clear(ctx context.Context, buyerID int64) error
}

type PricingFactory interface {
	DeliveryCharge(subtotal int64) int64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type ExecuteFn func(ctx context.Context, orderID int64) error

type HandlerFactory interface {
	GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
}
