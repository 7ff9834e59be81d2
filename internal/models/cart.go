package models

// CartItem is a cart line: a snapshot of the product taken at add time
// plus a quantity. Quantity is always >= 1; a line that would reach zero
// is removed from the cart instead.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns the line price for this item.
func (i CartItem) Subtotal() int {
	return i.Price * i.Quantity
}
