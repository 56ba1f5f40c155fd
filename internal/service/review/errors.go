package review

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRating         = errors.New("invalid rating")
	ErrReviewNotFound        = errors.New("review not found")
	ErrProductNotFound       = errors.New("product not found")
)
