package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/repository"
	"storefront/internal/service/cart"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetLines(ctx context.Context, buyerID int64) ([]entities.CartLine, error) {
	query := `
		SELECT
			ci.id,
			ci.quantity,
			p.id,
			p.name,
			p.description,
			p.price,
			p.stock_quantity,
			COALESCE(
				(SELECT ARRAY_AGG(pi.url ORDER BY pi.id) FROM product_images pi WHERE pi.product_id = p.id),
				'{}')
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.buyer_id = $1
		ORDER BY ci.id
	`

	rows, err := r.querier.Query(ctx, query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected cart repository getlines error: %w", err)
	}
	defer rows.Close()

	lineModels := make([]CartLineDB, 0, 8)
	for rows.Next() {
		var lineModel CartLineDB
		err := rows.Scan(
			&lineModel.ID,
			&lineModel.Quantity,
			&lineModel.ProductID,
			&lineModel.ProductName,
			&lineModel.Description,
			&lineModel.Price,
			&lineModel.StockQuantity,
			&lineModel.Images,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected cart repository getlines error: %w", err)
		}
		lineModels = append(lineModels, lineModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected cart repository getlines error: %w", err)
	}

	return ToDomainLines(lineModels), nil
}

// Upsert - один атомарный стейтмент, без read-modify-write по количеству.
func (r *Repository) Upsert(ctx context.Context, buyerID, productID int64) error {
	query := `
		INSERT INTO cart_items (buyer_id, product_id, quantity)
		VALUES ($1, $2, 1)
		ON CONFLICT (buyer_id, product_id) DO UPDATE
		SET quantity = cart_items.quantity + 1,
			updated_at = NOW()
	`

	_, err := r.querier.Exec(ctx, query, buyerID, productID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrFKViolation) {
			return cart.ErrProductNotFound
		}
		return fmt.Errorf("unexpected cart repository upsert error: %w", err)
	}

	return nil
}

func (r *Repository) Increment(ctx context.Context, buyerID, productID int64) error {
	query := `
		UPDATE cart_items
		SET quantity = quantity + 1,
			updated_at = NOW()
		WHERE buyer_id = $1 AND product_id = $2
	`

	result, err := r.querier.Exec(ctx, query, buyerID, productID)
	if err != nil {
		return fmt.Errorf("unexpected cart repository increment error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return cart.ErrCartItemNotFound
	}

	return nil
}

// Decrement уменьшает количество только выше единицы: CHECK (quantity > 0)
// не даёт записать ноль. Для строки на единице возвращает 0, удаление за вызывающим.
func (r *Repository) Decrement(ctx context.Context, buyerID, productID int64) (int64, error) {
	query := `
		UPDATE cart_items
		SET quantity = quantity - 1,
			updated_at = NOW()
		WHERE buyer_id = $1 AND product_id = $2 AND quantity > 1
		RETURNING quantity
	`

	var remaining int64
	err := r.querier.QueryRow(ctx, query, buyerID, productID).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("unexpected cart repository decrement error: %w", err)
	}

	existsQuery := `
		SELECT quantity
		FROM cart_items
		WHERE buyer_id = $1 AND product_id = $2
	`

	var current int64
	err = r.querier.QueryRow(ctx, existsQuery, buyerID, productID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, cart.ErrCartItemNotFound
		}
		return 0, fmt.Errorf("unexpected cart repository decrement error: %w", err)
	}

	return 0, nil
}

func (r *Repository) Remove(ctx context.Context, buyerID, productID int64) error {
	query := `
		DELETE FROM cart_items
		WHERE buyer_id = $1 AND product_id = $2
	`

	_, err := r.querier.Exec(ctx, query, buyerID, productID)
	if err != nil {
		return fmt.Errorf("unexpected cart repository remove error: %w", err)
	}

	return nil
}

func (r *Repository) Clear(ctx context.Context, buyerID int64) error {
	query := `
		DELETE FROM cart_items
		WHERE buyer_id = $1
	`

	_, err := r.querier.Exec(ctx, query, buyerID)
	if err != nil {
		return fmt.Errorf("unexpected cart repository clear error: %w", err)
	}

	return nil
}

func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM cart_items
		WHERE updated_at < $1
	`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected cart repository cleanup error: %w", err)
	}

	return result.RowsAffected(), nil
}
