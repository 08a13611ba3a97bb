package entities

const (
	UnknownBuyer   = "Unknown Buyer"
	UnknownProduct = "Unknown Product"
	NoAddress      = "No address provided"
)

// Profile часть записи справочника, нужная для обогащения.
// Любое поле может быть пустым.
type Profile struct {
	UserID   string
	FullName string
	Phone    string
	Email    string
	Address  string
}

type Listing struct {
	ID   string
	Name string
}

// OrderView представляет заказ с данными покупателя и товара.
type OrderView struct {
	Order

	BuyerName    string
	BuyerPhone   string
	BuyerEmail   string
	BuyerAddress string
	ListingName  string
}

// ShippingAddress возвращает адрес отправки: адрес доставки заказа,
// иначе адрес из профиля покупателя.
func (v OrderView) ShippingAddress() string {
	if v.DeliveryAddress != "" {
		return v.DeliveryAddress
	}
	if v.BuyerAddress != "" {
		return v.BuyerAddress
	}
	return NoAddress
}
