package product

import "storefront/internal/entities"

func ToDomain(p *ProductDB) *entities.Product {
	if p == nil {
		return nil
	}
	return &entities.Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Category:      p.Category,
		Images:        p.Images,
		Rating:        p.Rating,
		IsActive:      p.IsActive,
		SellerID:      p.SellerID,
		SellerName:    p.SellerName,
		CreatedAt:     p.CreatedAt,
	}
}

func ToDomainList(productsDB []ProductDB) []entities.Product {
	if len(productsDB) == 0 {
		return []entities.Product{}
	}

	result := make([]entities.Product, len(productsDB))
	for i, productDB := range productsDB {
		result[i] = *ToDomain(&productDB)
	}
	return result
}

func ToCheckoutDomain(p *CheckoutProductDB) *entities.CheckoutProduct {
	if p == nil {
		return nil
	}
	return &entities.CheckoutProduct{
		ID:            p.ID,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
	}
}
