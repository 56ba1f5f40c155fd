package order_handle

import (
	"context"
	"fmt"

	"storefront/internal/entities"
	"storefront/internal/service/order"
)

type OrderTransitions interface {
	MarkShipped(ctx context.Context, orderID int64) error
	MarkDelivered(ctx context.Context, orderID int64) error
}

type StatusHandlerFactory struct {
	orders OrderTransitions
}

func NewStatusHandlerFactory(orders OrderTransitions) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		orders: orders,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderShipped:
		return f.shippedHandler, nil
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) shippedHandler(ctx context.Context, orderID int64) error {
	err := f.orders.MarkShipped(ctx, orderID)
	if err != nil {
		return fmt.Errorf("mark order %d shipped: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, orderID int64) error {
	err := f.orders.MarkDelivered(ctx, orderID)
	if err != nil {
		return fmt.Errorf("mark order %d delivered: %w", orderID, err)
	}
	return nil
}
