package cart

import "errors"

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidAction    = errors.New("invalid action")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrProductNotFound  = errors.New("product not found")
)
