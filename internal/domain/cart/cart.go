package cart

import (
	"slices"

	"github.com/xenking/farm-shop/internal/domain/product"
)

// Cart is the ordered list of products a customer has picked. It performs no
// validation; callers only add products that were taken out of inventory.
type Cart struct {
	contents []product.Product
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add appends a product.
func (c *Cart) Add(p product.Product) {
	c.contents = append(c.contents, p)
}

// Contents returns a copy of the cart contents in insertion order.
func (c *Cart) Contents() []product.Product {
	return slices.Clone(c.contents)
}

// Clear empties the cart in place.
func (c *Cart) Clear() {
	c.contents = nil
}

// IsEmpty reports whether the cart holds no products.
func (c *Cart) IsEmpty() bool {
	return len(c.contents) == 0
}

// Len returns the number of products in the cart.
func (c *Cart) Len() int {
	return len(c.contents)
}
