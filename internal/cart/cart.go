// Package cart implements the client-side shopping cart: a small state
// machine over product lines with a file-backed store standing in for the
// browser's local storage.
package cart

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Item is one product line in the cart. Name, price and image are snapshots
// taken when the product was added.
type Item struct {
	ProductID    uuid.UUID `json:"productId"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	MainImageURL string    `json:"mainImageUrl"`
}

// Cart holds the product lines in insertion order. The zero value is an
// empty, usable cart. Cart is not safe for concurrent use; the Store
// serializes access for callers that need it.
type Cart struct {
	items []Item
	total float64
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the product in the cart. Adding a product that is
// already present merges into the existing line by incrementing its quantity.
func (c *Cart) Add(product *entity.Product) {
	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity++
			c.recompute()

			return
		}
	}

	c.items = append(c.items, Item{
		ProductID:    product.ID,
		Name:         product.Name,
		Price:        product.Price,
		Quantity:     1,
		MainImageURL: product.MainImageURL,
	})
	c.recompute()
}

// SetQuantity sets the quantity of an existing line. Quantities below 1 are
// ignored; use Remove to drop a line.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			c.recompute()

			return
		}
	}
}

// Remove drops the line for the given product, if present.
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.recompute()

			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
	c.total = 0
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)

	return out
}

// Total returns the cart total, recomputed after every transition.
func (c *Cart) Total() float64 {
	return c.total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) recompute() {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	c.total = total
}

// replace swaps in a loaded set of lines, used by the Store after
// deserialization.
func (c *Cart) replace(items []Item) {
	c.items = items
	c.recompute()
}
