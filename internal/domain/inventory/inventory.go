// Package inventory holds the farm's stock.
//
// Two implementations exist. Basic stores single units and removes them in
// insertion order. Fancy supports bulk operations and removes the highest
// quality unit of a kind first.
package inventory

import (
	"github.com/xenking/farm-shop/internal/domain/product"
)

// Inventory is a multiset of products. Each instance owns its own store.
type Inventory interface {
	// AddProduct stocks a single unit.
	AddProduct(barcode product.Barcode, quality product.Quality)
	// AddProducts stocks quantity units. It returns an error matching
	// farmerr.ErrInvalidStockRequest for quantities the inventory cannot accept.
	AddProducts(barcode product.Barcode, quality product.Quality, quantity int) error
	// ExistsProduct reports whether at least one unit of barcode is stocked.
	ExistsProduct(barcode product.Barcode) bool
	// RemoveProduct takes one unit of barcode out of stock. The result holds
	// the removed unit, or is empty when none is stocked.
	RemoveProduct(barcode product.Barcode) []product.Product
	// RemoveProducts takes up to quantity units out of stock, returning fewer
	// when stock runs out. It returns an error matching
	// farmerr.ErrFailedTransaction for quantities the inventory cannot serve.
	RemoveProducts(barcode product.Barcode, quantity int) ([]product.Product, error)
	// AllProducts returns a copy of the stock.
	AllProducts() []product.Product
	// SupportsBulk reports whether multi-unit add and remove are allowed.
	SupportsBulk() bool
}
