package review

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"storefront/internal/entities"
	"storefront/internal/repository"
	"storefront/internal/service/review"
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

func (r *Repository) GetByProduct(ctx context.Context, productID int64) ([]entities.Review, error) {
	query := `
		SELECT
			r.id,
			r.product_id,
			r.buyer_id,
			COALESCE(b.name, ''),
			r.rating,
			COALESCE(r.comment, ''),
			r.created_at,
			r.updated_at
		FROM reviews r
		LEFT JOIN buyers b ON b.id = r.buyer_id
		WHERE r.product_id = $1 AND r.deleted_at IS NULL
		ORDER BY r.created_at DESC
	`

	rows, err := r.querier.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository get by product error: %w", err)
	}
	defer rows.Close()

	reviewModels := make([]ReviewDB, 0, 8)
	for rows.Next() {
		var reviewModel ReviewDB
		err := rows.Scan(
			&reviewModel.ID,
			&reviewModel.ProductID,
			&reviewModel.BuyerID,
			&reviewModel.BuyerName,
			&reviewModel.Rating,
			&reviewModel.Comment,
			&reviewModel.CreatedAt,
			&reviewModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected review repository get by product error: %w", err)
		}
		reviewModels = append(reviewModels, reviewModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected review repository get by product error: %w", err)
	}

	return ToDomainList(reviewModels), nil
}

func (r *Repository) Create(ctx context.Context, rev entities.Review) error {
	query := `
		INSERT INTO reviews (product_id, buyer_id, rating, comment)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.querier.Exec(ctx, query, rev.ProductID, rev.BuyerID, rev.Rating, rev.Comment)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrFKViolation) {
			return review.ErrProductNotFound
		}
		return fmt.Errorf("unexpected review repository create error: %w", err)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, buyerID int64, reviewModify entities.ReviewModify) error {
	values := FromDomainModify(reviewModify)
	if len(values) == 0 {
		return nil
	}

	builder := qb.
		Update("reviews").
		SetMap(values).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *reviewModify.ID}).
		Where(sq.Eq{"buyer_id": buyerID}).
		Where("deleted_at IS NULL")

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected review repository update error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected review repository update error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

func (r *Repository) SoftDelete(ctx context.Context, buyerID, reviewID int64) error {
	query := `
		UPDATE reviews
		SET deleted_at = NOW()
		WHERE id = $1 AND buyer_id = $2 AND deleted_at IS NULL
	`

	result, err := r.querier.Exec(ctx, query, reviewID, buyerID)
	if err != nil {
		return fmt.Errorf("unexpected review repository soft delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}
