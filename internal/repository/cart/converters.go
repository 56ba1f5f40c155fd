package cart

import "storefront/internal/entities"

func ToDomainLine(l *CartLineDB) *entities.CartLine {
	if l == nil {
		return nil
	}
	return &entities.CartLine{
		ID:       l.ID,
		Quantity: l.Quantity,
		Product: entities.Product{
			ID:            l.ProductID,
			Name:          l.ProductName,
			Description:   l.Description,
			Price:         l.Price,
			StockQuantity: l.StockQuantity,
			Images:        l.Images,
		},
	}
}

func ToDomainLines(linesDB []CartLineDB) []entities.CartLine {
	if len(linesDB) == 0 {
		return []entities.CartLine{}
	}

	result := make([]entities.CartLine, len(linesDB))
	for i, lineDB := range linesDB {
		result[i] = *ToDomainLine(&lineDB)
	}
	return result
}
