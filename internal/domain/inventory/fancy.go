package inventory

import (
	"slices"

	"github.com/xenking/farm-shop/internal/domain/farmerr"
	"github.com/xenking/farm-shop/internal/domain/product"
)

var _ Inventory = (*Fancy)(nil)

// Fancy keeps one stack per product kind, supports bulk operations, and
// always hands out the best unit of a kind first.
type Fancy struct {
	stacks map[product.Barcode][]product.Product
}

// NewFancy returns an empty fancy inventory.
func NewFancy() *Fancy {
	return &Fancy{stacks: make(map[product.Barcode][]product.Product)}
}

// AddProduct stocks a single unit.
func (inv *Fancy) AddProduct(barcode product.Barcode, quality product.Quality) {
	inv.stacks[barcode] = append(inv.stacks[barcode], product.New(barcode, quality))
}

// AddProducts stocks quantity units one at a time.
func (inv *Fancy) AddProducts(barcode product.Barcode, quality product.Quality, quantity int) error {
	if quantity < 1 {
		return farmerr.NonPositiveQuantity(quantity, farmerr.ErrInvalidStockRequest)
	}
	for range quantity {
		inv.AddProduct(barcode, quality)
	}
	return nil
}

// ExistsProduct reports whether barcode is stocked.
func (inv *Fancy) ExistsProduct(barcode product.Barcode) bool {
	return len(inv.stacks[barcode]) > 0
}

// StockedQuantity returns the number of units of barcode in stock.
func (inv *Fancy) StockedQuantity(barcode product.Barcode) int {
	return len(inv.stacks[barcode])
}

// RemoveProduct removes the highest quality unit of barcode. Among units of
// equal quality the earliest stocked goes first.
func (inv *Fancy) RemoveProduct(barcode product.Barcode) []product.Product {
	stack := inv.stacks[barcode]
	if len(stack) == 0 {
		return []product.Product{}
	}

	best := 0
	for i, p := range stack[1:] {
		if p.Quality > stack[best].Quality {
			best = i + 1
		}
	}

	p := stack[best]
	stack = slices.Delete(stack, best, best+1)
	if len(stack) == 0 {
		delete(inv.stacks, barcode)
	} else {
		inv.stacks[barcode] = stack
	}
	return []product.Product{p}
}

// RemoveProducts removes up to quantity units, best first. Running out of
// stock is not an error; the result is simply shorter than requested.
func (inv *Fancy) RemoveProducts(barcode product.Barcode, quantity int) ([]product.Product, error) {
	if quantity < 1 {
		return nil, farmerr.NonPositiveQuantity(quantity, farmerr.ErrFailedTransaction)
	}

	removed := make([]product.Product, 0, min(quantity, inv.StockedQuantity(barcode)))
	for range quantity {
		if !inv.ExistsProduct(barcode) {
			break
		}
		removed = append(removed, inv.RemoveProduct(barcode)...)
	}
	return removed, nil
}

// AllProducts returns the stock ordered by barcode declaration order, then
// by the order units were stocked. Units are not sorted by quality here;
// quality only decides which unit RemoveProduct takes.
func (inv *Fancy) AllProducts() []product.Product {
	var all []product.Product
	for _, b := range product.Barcodes() {
		all = append(all, inv.stacks[b]...)
	}
	return all
}

// SupportsBulk is always true.
func (inv *Fancy) SupportsBulk() bool {
	return true
}
