package cart

type CartLineDB struct {
	ID            int64
	Quantity      int64
	ProductID     int64
	ProductName   string
	Description   string
	Price         int64
	StockQuantity int64
	Images        []string
}
