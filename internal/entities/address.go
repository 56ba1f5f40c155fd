package entities

type Address struct {
	ID          int64
	BuyerID     int64
	FirstName   string
	LastName    string
	Email       string
	AddressLine string
	City        string
	State       string
	PostalCode  string
	PhoneNumber string
}
