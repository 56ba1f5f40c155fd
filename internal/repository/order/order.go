package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateAddress(ctx context.Context, address entities.Address) (int64, error) {
	query := `
		INSERT INTO addresses (
			buyer_id, first_name, last_name, email,
			address_line, city, state, postal_code, phone_number
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(ctx, query,
		address.BuyerID,
		address.FirstName,
		address.LastName,
		address.Email,
		address.AddressLine,
		address.City,
		address.State,
		address.PostalCode,
		address.PhoneNumber,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository create address error: %w", err)
	}

	return id, nil
}

func (r *Repository) CreateOrder(ctx context.Context, o entities.Order) (int64, error) {
	query := `
		INSERT INTO orders (
			buyer_id, address_id, delivery_charges, total_amount,
			order_status, payment_method
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(ctx, query,
		o.BuyerID,
		o.AddressID,
		o.DeliveryCharges,
		o.TotalAmount,
		o.Status.String(),
		o.PaymentMethod.String(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository create order error: %w", err)
	}

	return id, nil
}

func (r *Repository) AddOrderItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	builder := qb.
		Insert("order_items").
		Columns("order_id", "product_id", "quantity", "price")
	for _, item := range items {
		builder = builder.Values(orderID, item.ProductID, item.Quantity, item.Price)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository add order items error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository add order items error: %w", err)
	}

	return nil
}

func (r *Repository) GetSummaries(ctx context.Context, buyerID int64) ([]entities.OrderSummary, error) {
	query := `
		SELECT
			o.id,
			o.total_amount,
			o.order_status,
			o.payment_method,
			o.created_at,
			o.delivered_at,
			COALESCE((SELECT SUM(oi.quantity) FROM order_items oi WHERE oi.order_id = o.id), 0),
			a.first_name,
			a.last_name,
			COALESCE(a.email, ''),
			a.phone_number,
			a.postal_code,
			a.address_line,
			a.city,
			a.state
		FROM orders o
		JOIN addresses a ON a.id = o.address_id
		WHERE o.buyer_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := r.querier.Query(ctx, query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get summaries error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderSummaryDB, 0, 8)
	for rows.Next() {
		var orderModel OrderSummaryDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.PaymentMethod,
			&orderModel.CreatedAt,
			&orderModel.DeliveredAt,
			&orderModel.TotalItems,
			&orderModel.FirstName,
			&orderModel.LastName,
			&orderModel.Email,
			&orderModel.PhoneNumber,
			&orderModel.PostalCode,
			&orderModel.AddressLine,
			&orderModel.City,
			&orderModel.State,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get summaries error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get summaries error: %w", err)
	}

	return ToSummaryDomainList(orderModels), nil
}

func (r *Repository) GetDetail(ctx context.Context, buyerID, orderID int64) (*entities.OrderDetail, error) {
	query := `
		SELECT
			id,
			delivery_charges,
			total_amount,
			order_status,
			payment_method,
			created_at,
			delivered_at
		FROM orders
		WHERE id = $1 AND buyer_id = $2
	`

	var orderModel OrderDetailDB
	err := r.querier.QueryRow(ctx, query, orderID, buyerID).
		Scan(
			&orderModel.ID,
			&orderModel.DeliveryCharges,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.PaymentMethod,
			&orderModel.CreatedAt,
			&orderModel.DeliveredAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get detail error: %w", err)
	}

	itemsQuery := `
		SELECT
			oi.id,
			oi.product_id,
			COALESCE(p.name, ''),
			COALESCE(
				(SELECT ARRAY_AGG(pi.url ORDER BY pi.id) FROM product_images pi WHERE pi.product_id = oi.product_id),
				'{}'),
			oi.quantity,
			oi.price
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`

	rows, err := r.querier.Query(ctx, itemsQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get detail error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]OrderDetailItemDB, 0, 4)
	for rows.Next() {
		var itemModel OrderDetailItemDB
		err := rows.Scan(
			&itemModel.ID,
			&itemModel.ProductID,
			&itemModel.ProductName,
			&itemModel.Images,
			&itemModel.Quantity,
			&itemModel.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get detail error: %w", err)
		}
		itemModels = append(itemModels, itemModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get detail error: %w", err)
	}

	return ToDetailDomain(&orderModel, itemModels), nil
}

// MarkCancelled - условный переход pending -> cancelled одним запросом.
// Гонку двух отмен выигрывает ровно один вызов.
func (r *Repository) MarkCancelled(ctx context.Context, buyerID, orderID int64) (bool, error) {
	query := `
		UPDATE orders
		SET order_status = 'cancelled'
		WHERE id = $1
			AND buyer_id = $2
			AND order_status = 'pending'
	`

	result, err := r.querier.Exec(ctx, query, orderID, buyerID)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository mark cancelled error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) GetStatusForBuyer(ctx context.Context, buyerID, orderID int64) (entities.OrderStatusType, error) {
	query := `
		SELECT order_status
		FROM orders
		WHERE id = $1 AND buyer_id = $2
	`

	var status string
	err := r.querier.QueryRow(ctx, query, orderID, buyerID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", order.ErrOrderNotFound
		}
		return "", fmt.Errorf("unexpected order repository get status error: %w", err)
	}

	return entities.OrderStatusType(status), nil
}

func (r *Repository) GetItems(ctx context.Context, orderID int64) ([]entities.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]OrderItemDB, 0, 4)
	for rows.Next() {
		var itemModel OrderItemDB
		err := rows.Scan(
			&itemModel.ID,
			&itemModel.OrderID,
			&itemModel.ProductID,
			&itemModel.Quantity,
			&itemModel.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		itemModels = append(itemModels, itemModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	return ToItemDomainList(itemModels), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID int64, from, to entities.OrderStatusType) (bool, error) {
	builder := qb.
		Update("orders").
		Set("order_status", to.String()).
		Where(sq.Eq{"id": orderID}).
		Where(sq.Eq{"order_status": from.String()})

	// дата доставки фиксируется в момент перехода
	if to == entities.OrderDelivered {
		builder = builder.Set("delivered_at", sq.Expr("NOW()"))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
