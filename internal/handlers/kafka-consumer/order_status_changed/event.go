package order_status_changed

// statusChangedEvent - сообщение fulfillment-системы из топика order.status.changed.
type statusChangedEvent struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}
