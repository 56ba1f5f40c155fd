package order

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/entities"
	productservice "storefront/internal/service/product"
)

type Order struct {
	repository    Repository
	products      ProductRepository
	cart          CartRepository
	pricing       PricingFactory
	txManager     TxManager
	statusFactory HandlerFactory
}

func New(
	repository Repository,
	products ProductRepository,
	cart CartRepository,
	pricing PricingFactory,
	txManager TxManager,
) *Order {
	return &Order{
		repository: repository,
		products:   products,
		cart:       cart,
		pricing:    pricing,
		txManager:  txManager,
	}
}

// SetStatusHandlerFactory подключает диспетчер статусов после сборки:
// фабрика сама зависит от переходов сервиса.
func (s *Order) SetStatusHandlerFactory(statusFactory HandlerFactory) {
	s.statusFactory = statusFactory
}

// PlaceOrder оформляет заказ: списывает остатки, сохраняет адрес, заказ и
// строки заказа, чистит корзину. Все внутри одной транзакции - либо заказ
// создан целиком и остатки списаны, либо ничего.
func (s *Order) PlaceOrder(ctx context.Context, buyerID int64, checkout entities.Checkout) (int64, error) {
	if !isValidAddress(checkout.Address) {
		return 0, ErrInvalidAddress
	}
	if !isValidItems(checkout.Items) {
		return 0, ErrEmptyOrder
	}

	var orderID int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var subtotal int64
		orderItems := make([]entities.OrderItem, 0, len(checkout.Items))

		for _, item := range checkout.Items {
			product, err := s.products.GetForCheckout(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, productservice.ErrProductNotFound) {
					return &InvalidProductError{ProductID: item.ProductID}
				}
				return fmt.Errorf("fetch product %d: %w", item.ProductID, err)
			}

			if !product.IsActive || product.StockQuantity < item.Quantity {
				return &InvalidProductError{ProductID: item.ProductID}
			}

			// списание условное: параллельный checkout мог успеть раньше
			ok, err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("decrement stock for product %d: %w", item.ProductID, err)
			}
			if !ok {
				return &InvalidProductError{ProductID: item.ProductID}
			}

			subtotal += product.Price * item.Quantity
			orderItems = append(orderItems, entities.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}

		deliveryCharge := s.pricing.DeliveryCharge(subtotal)

		address := checkout.Address
		address.BuyerID = buyerID
		addressID, err := s.repository.CreateAddress(ctx, address)
		if err != nil {
			return fmt.Errorf("save address: %w", err)
		}

		orderID, err = s.repository.CreateOrder(ctx, entities.Order{
			BuyerID:         buyerID,
			AddressID:       addressID,
			DeliveryCharges: deliveryCharge,
			TotalAmount:     subtotal + deliveryCharge,
			Status:          entities.OrderPending,
			PaymentMethod:   entities.PaymentCashOnDelivery,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if err := s.repository.AddOrderItems(ctx, orderID, orderItems); err != nil {
			return fmt.Errorf("add order items: %w", err)
		}

		if err := s.cart.Clear(ctx, buyerID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// CancelOrder отменяет pending-заказ покупателя и возвращает остатки по всем
// строкам заказа. Статус и все инкременты остатков идут одной транзакцией:
// частично отмененного заказа не бывает. Проигравший гонку условный апдейт
// статуса трактуется как "уже не pending".
func (s *Order) CancelOrder(ctx context.Context, buyerID, orderID int64) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		cancelled, err := s.repository.MarkCancelled(ctx, buyerID, orderID)
		if err != nil {
			return fmt.Errorf("mark order cancelled: %w", err)
		}

		if !cancelled {
			// различаем "не найден/чужой" и "не тот статус"
			_, err := s.repository.GetStatusForBuyer(ctx, buyerID, orderID)
			if err != nil {
				if errors.Is(err, ErrOrderNotFound) {
					return ErrOrderNotFound
				}
				return fmt.Errorf("get order status: %w", err)
			}
			return ErrOrderNotCancellable
		}

		items, err := s.repository.GetItems(ctx, orderID)
		if err != nil {
			return fmt.Errorf("fetch order items: %w", err)
		}

		for _, item := range items {
			if err := s.products.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("restock product %d: %w", item.ProductID, err)
			}
		}
		return nil
	})
}

func (s *Order) GetOrders(ctx context.Context, buyerID int64) ([]entities.OrderSummary, error) {
	orders, err := s.repository.GetSummaries(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

func (s *Order) GetOrder(ctx context.Context, buyerID, orderID int64) (*entities.OrderDetail, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetDetail(ctx, buyerID, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// ProcessOrderStatusChange обрабатывает событие fulfillment-системы о смене
// статуса заказа. Неизвестные статусы пропускаются без ошибки.
func (s *Order) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) error {
	if orderModify.ID == nil || orderModify.Status == nil {
		return ErrMissingRequiredFields
	}

	executeFn, err := s.statusFactory.GetHandler(*orderModify.Status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return nil
		}
		return err
	}

	return executeFn(ctx, *orderModify.ID)
}

func (s *Order) MarkShipped(ctx context.Context, orderID int64) error {
	return s.transition(ctx, orderID, entities.OrderPending, entities.OrderShipped)
}

func (s *Order) MarkDelivered(ctx context.Context, orderID int64) error {
	return s.transition(ctx, orderID, entities.OrderShipped, entities.OrderDelivered)
}

func (s *Order) transition(ctx context.Context, orderID int64, from, to entities.OrderStatusType) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	ok, err := s.repository.UpdateStatus(ctx, orderID, from, to)
	if err != nil {
		return fmt.Errorf("update order status %s -> %s: %w", from, to, err)
	}
	if !ok {
		return fmt.Errorf("order %d is not in status %s: %w", orderID, from, ErrStatusMismatch)
	}
	return nil
}
