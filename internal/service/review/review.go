package review

import (
	"context"
	"fmt"

	"storefront/internal/entities"
)

type Review struct {
	repository Repository
}

func New(repository Repository) *Review {
	return &Review{
		repository: repository,
	}
}

func (s *Review) GetReviews(ctx context.Context, productID int64) ([]entities.Review, error) {
	if productID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	reviews, err := s.repository.GetByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}

func (s *Review) CreateReview(ctx context.Context, buyerID int64, reviewModify entities.ReviewModify) error {
	if reviewModify.ProductID == nil || reviewModify.Rating == nil {
		return ErrMissingRequiredFields
	}
	if !isValidRating(*reviewModify.Rating) {
		return ErrInvalidRating
	}

	comment := ""
	if reviewModify.Comment != nil {
		comment = *reviewModify.Comment
	}

	err := s.repository.Create(ctx, entities.Review{
		ProductID: *reviewModify.ProductID,
		BuyerID:   buyerID,
		Rating:    *reviewModify.Rating,
		Comment:   comment,
	})
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (s *Review) UpdateReview(ctx context.Context, buyerID int64, reviewModify entities.ReviewModify) error {
	if reviewModify.ID == nil || reviewModify.Rating == nil {
		return ErrMissingRequiredFields
	}
	if !isValidRating(*reviewModify.Rating) {
		return ErrInvalidRating
	}

	if err := s.repository.Update(ctx, buyerID, reviewModify); err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

func (s *Review) DeleteReview(ctx context.Context, buyerID, reviewID int64) error {
	if reviewID <= 0 {
		return ErrMissingRequiredFields
	}

	if err := s.repository.SoftDelete(ctx, buyerID, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
