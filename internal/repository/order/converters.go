package order

import "storefront/internal/entities"

func ToSummaryDomain(o *OrderSummaryDB) *entities.OrderSummary {
	if o == nil {
		return nil
	}
	return &entities.OrderSummary{
		ID:            o.ID,
		TotalAmount:   o.TotalAmount,
		Status:        entities.OrderStatusType(o.Status),
		PaymentMethod: entities.PaymentMethodType(o.PaymentMethod),
		OrderDate:     o.CreatedAt,
		DeliveryDate:  o.DeliveredAt,
		TotalItems:    o.TotalItems,
		Address: entities.Address{
			FirstName:   o.FirstName,
			LastName:    o.LastName,
			Email:       o.Email,
			PhoneNumber: o.PhoneNumber,
			PostalCode:  o.PostalCode,
			AddressLine: o.AddressLine,
			City:        o.City,
			State:       o.State,
		},
	}
}

func ToSummaryDomainList(ordersDB []OrderSummaryDB) []entities.OrderSummary {
	if len(ordersDB) == 0 {
		return []entities.OrderSummary{}
	}

	result := make([]entities.OrderSummary, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToSummaryDomain(&orderDB)
	}
	return result
}

func ToDetailDomain(o *OrderDetailDB, itemsDB []OrderDetailItemDB) *entities.OrderDetail {
	if o == nil {
		return nil
	}

	items := make([]entities.OrderDetailItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		items[i] = entities.OrderDetailItem{
			ID:          itemDB.ID,
			ProductID:   itemDB.ProductID,
			ProductName: itemDB.ProductName,
			Images:      itemDB.Images,
			Quantity:    itemDB.Quantity,
			Price:       itemDB.Price,
		}
	}

	return &entities.OrderDetail{
		ID:              o.ID,
		DeliveryCharges: o.DeliveryCharges,
		TotalAmount:     o.TotalAmount,
		Status:          entities.OrderStatusType(o.Status),
		PaymentMethod:   entities.PaymentMethodType(o.PaymentMethod),
		OrderDate:       o.CreatedAt,
		DeliveryDate:    o.DeliveredAt,
		Items:           items,
	}
}

func ToItemDomainList(itemsDB []OrderItemDB) []entities.OrderItem {
	if len(itemsDB) == 0 {
		return []entities.OrderItem{}
	}

	result := make([]entities.OrderItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		result[i] = entities.OrderItem{
			ID:        itemDB.ID,
			OrderID:   itemDB.OrderID,
			ProductID: itemDB.ProductID,
			Quantity:  itemDB.Quantity,
			Price:     itemDB.Price,
		}
	}
	return result
}
