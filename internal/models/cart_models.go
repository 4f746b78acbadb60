package models

// CartItem is a product held in the cart together with its amount.
// Amount is always >= 1; an item that would drop to zero is removed instead.
type CartItem struct {
	Product
	Amount int `json:"amount"`
}

// Cart is the ordered list of cart items, unique by product ID.
type Cart []CartItem

// Clone returns a copy that shares no backing array with c.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// IndexOf returns the position of productID in the cart, or -1.
func (c Cart) IndexOf(productID int64) int {
	for i, item := range c {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

// TotalItems sums the amounts of every item.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c {
		total += item.Amount
	}
	return total
}

// Amounts maps product IDs to their amount in the cart.
func (c Cart) Amounts() map[int64]int {
	amounts := make(map[int64]int, len(c))
	for _, item := range c {
		amounts[item.ID] = item.Amount
	}
	return amounts
}
