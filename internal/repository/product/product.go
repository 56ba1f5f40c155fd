package product

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/service/product"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// подзапросы вместо join, чтобы агрегаты картинок и рейтинга не множили строки
const (
	imagesExpr = `COALESCE(
		(SELECT ARRAY_AGG(pi.url ORDER BY pi.id) FROM product_images pi WHERE pi.product_id = p.id),
		'{}')`
	ratingExpr = `COALESCE(
		(SELECT ROUND(AVG(r.rating), 2)::float8 FROM reviews r
		 WHERE r.product_id = p.id AND r.deleted_at IS NULL),
		5)`
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetActive(ctx context.Context, limit int64) ([]entities.Product, error) {
	builder := qb.
		Select(
			"p.id",
			"p.name",
			"p.description",
			"p.price",
			"p.stock_quantity",
			"COALESCE(c.name, 'Uncategorized')",
			imagesExpr,
			ratingExpr,
		).
		From("products p").
		LeftJoin("categories c ON c.id = p.category_id").
		Where(sq.Eq{"p.is_active": true}).
		Where("p.deleted_at IS NULL").
		OrderBy("p.id")

	// опциональный лимит
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getactive error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getactive error: %w", err)
	}
	defer rows.Close()

	productModels := make([]ProductDB, 0, 8)
	for rows.Next() {
		var productModel ProductDB
		err := rows.Scan(
			&productModel.ID,
			&productModel.Name,
			&productModel.Description,
			&productModel.Price,
			&productModel.StockQuantity,
			&productModel.Category,
			&productModel.Images,
			&productModel.Rating,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository getactive error: %w", err)
		}
		productModels = append(productModels, productModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getactive error: %w", err)
	}

	return ToDomainList(productModels), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Product, error) {
	query := `
		SELECT
			p.id,
			p.name,
			p.description,
			p.price,
			p.stock_quantity,
			p.is_active,
			p.seller_id,
			COALESCE(c.name, 'Uncategorized'),
			COALESCE(u.name, 'Unknown'),
			` + imagesExpr + `,
			` + ratingExpr + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN users u ON u.id = p.seller_id
		WHERE p.id = $1 AND p.deleted_at IS NULL
	`

	var productModel ProductDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&productModel.ID,
			&productModel.Name,
			&productModel.Description,
			&productModel.Price,
			&productModel.StockQuantity,
			&productModel.IsActive,
			&productModel.SellerID,
			&productModel.Category,
			&productModel.SellerName,
			&productModel.Images,
			&productModel.Rating,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected product repository getbyid error: %w", err)
	}

	return ToDomain(&productModel), nil
}

func (r *Repository) GetForCheckout(ctx context.Context, productID int64) (*entities.CheckoutProduct, error) {
	query := `
		SELECT id, price, stock_quantity, is_active
		FROM products
		WHERE id = $1 AND deleted_at IS NULL
	`

	var productModel CheckoutProductDB
	err := r.querier.QueryRow(ctx, query, productID).
		Scan(
			&productModel.ID,
			&productModel.Price,
			&productModel.StockQuantity,
			&productModel.IsActive,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected product repository getforcheckout error: %w", err)
	}

	return ToCheckoutDomain(&productModel), nil
}

// DecrementStock - атомарное условное списание, никогда не уводит остаток в минус.
func (r *Repository) DecrementStock(ctx context.Context, productID, quantity int64) (bool, error) {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity - $2
		WHERE id = $1
			AND is_active = TRUE
			AND deleted_at IS NULL
			AND stock_quantity >= $2
	`

	result, err := r.querier.Exec(ctx, query, productID, quantity)
	if err != nil {
		return false, fmt.Errorf("unexpected product repository decrement stock error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// IncrementStock - атомарный возврат на остаток, без read-modify-write.
func (r *Repository) IncrementStock(ctx context.Context, productID, quantity int64) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $2
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, productID, quantity)
	if err != nil {
		return fmt.Errorf("unexpected product repository increment stock error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}
