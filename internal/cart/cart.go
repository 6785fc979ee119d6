// Package cart holds the client-side cart bookkeeping: a plain map
// of product id to quantity and pure functions over it. The UI layer
// keeps the cart in its own state and turns it into an order's items
// payload at checkout; nothing here touches the database.
package cart

// Cart maps product id to quantity. A product absent from the map has
// quantity zero.
type Cart map[uint]uint

// Add returns a copy of the cart with one more of the given product.
func Add(c Cart, productID uint) Cart {
	next := clone(c)
	next[productID]++
	return next
}

// Remove returns a copy of the cart with one fewer of the given
// product, dropping the entry entirely when it reaches zero. Removing
// a product that is not in the cart is a no-op.
func Remove(c Cart, productID uint) Cart {
	next := clone(c)
	switch qty := next[productID]; {
	case qty > 1:
		next[productID] = qty - 1
	case qty == 1:
		delete(next, productID)
	}
	return next
}

// Quantity reports how many of the given product are in the cart.
func Quantity(c Cart, productID uint) uint {
	return c[productID]
}

// TotalItems reports the number of units in the cart across all
// products.
func TotalItems(c Cart) uint {
	var total uint
	for _, qty := range c {
		total += qty
	}
	return total
}

// ItemSubtotal is the cost of one line: unit price times quantity.
func ItemSubtotal(price float64, quantity uint) float64 {
	return price * float64(quantity)
}

// Subtotal sums the cart against a price lookup. Products missing
// from the lookup contribute nothing, mirroring how the UI treats a
// product it can no longer resolve.
func Subtotal(c Cart, prices map[uint]float64) float64 {
	var total float64
	for productID, qty := range c {
		total += ItemSubtotal(prices[productID], qty)
	}
	return total
}

func clone(c Cart) Cart {
	next := make(Cart, len(c)+1)
	for productID, qty := range c {
		next[productID] = qty
	}
	return next
}
