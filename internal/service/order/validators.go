package order

import (
	"strings"

	"storefront/internal/entities"
)

func isValidOrderID(id int64) bool {
	return id > 0
}

// email в адресе опционален, остальные поля обязательны.
func isValidAddress(a entities.Address) bool {
	required := []string{
		a.FirstName,
		a.LastName,
		a.AddressLine,
		a.City,
		a.State,
		a.PostalCode,
		a.PhoneNumber,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

func isValidItems(items []entities.CheckoutItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return false
		}
	}
	return true
}
