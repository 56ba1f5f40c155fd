package order

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidAddress        = errors.New("incomplete address details")
	ErrEmptyOrder            = errors.New("order items are required")

	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNotCancellable - заказ существует, но уже не в pending.
	ErrOrderNotCancellable = errors.New("only pending orders can be canceled")

	ErrUndefinedStatus = errors.New("undefined order status")
	ErrStatusMismatch  = errors.New("order status mismatch")
)

// InvalidProductError - товар из запроса нельзя купить: не найден,
// неактивен или не хватает остатка. Хендлеру нужен id для тела ответа.
type InvalidProductError struct {
	ProductID int64
}

func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid product: %d", e.ProductID)
}
