package entities

import "time"

type CartItem struct {
	ID        int64
	BuyerID   int64
	ProductID int64
	Quantity  int64
	UpdatedAt time.Time
}

// CartLine - позиция корзины вместе с товаром для выдачи наружу.
type CartLine struct {
	ID       int64
	Quantity int64
	Product  Product
}

type CartActionType string

const (
	CartAddProduct    CartActionType = "addProduct"
	CartAddStock      CartActionType = "addStock"
	CartRemoveStock   CartActionType = "removeStock"
	CartRemoveProduct CartActionType = "removeProduct"
	CartClear         CartActionType = "clearCart"
)

func (a CartActionType) String() string {
	return string(a)
}
