package inventory

import (
	"slices"

	"github.com/go-faster/errors"

	"github.com/xenking/farm-shop/internal/domain/farmerr"
	"github.com/xenking/farm-shop/internal/domain/product"
)

var _ Inventory = (*Basic)(nil)

// Basic stores products one at a time in insertion order.
type Basic struct {
	products []product.Product
}

// NewBasic returns an empty basic inventory.
func NewBasic() *Basic {
	return &Basic{}
}

// AddProduct stocks a single unit.
func (inv *Basic) AddProduct(barcode product.Barcode, quality product.Quality) {
	inv.products = append(inv.products, product.New(barcode, quality))
}

// AddProducts only accepts a quantity of exactly one.
func (inv *Basic) AddProducts(barcode product.Barcode, quality product.Quality, quantity int) error {
	if quantity < 1 {
		return farmerr.NonPositiveQuantity(quantity, farmerr.ErrInvalidStockRequest)
	}
	if quantity > 1 {
		return errors.Wrap(farmerr.ErrInvalidStockRequest,
			"current inventory is not fancy enough, please supply products one at a time")
	}
	inv.AddProduct(barcode, quality)
	return nil
}

// ExistsProduct reports whether barcode is stocked.
func (inv *Basic) ExistsProduct(barcode product.Barcode) bool {
	return slices.ContainsFunc(inv.products, func(p product.Product) bool {
		return p.Barcode == barcode
	})
}

// RemoveProduct removes the first inserted unit of barcode.
func (inv *Basic) RemoveProduct(barcode product.Barcode) []product.Product {
	i := slices.IndexFunc(inv.products, func(p product.Product) bool {
		return p.Barcode == barcode
	})
	if i < 0 {
		return []product.Product{}
	}
	p := inv.products[i]
	inv.products = slices.Delete(inv.products, i, i+1)
	return []product.Product{p}
}

// RemoveProducts only accepts a quantity of exactly one.
func (inv *Basic) RemoveProducts(barcode product.Barcode, quantity int) ([]product.Product, error) {
	if quantity < 1 {
		return nil, farmerr.NonPositiveQuantity(quantity, farmerr.ErrFailedTransaction)
	}
	if quantity > 1 {
		return nil, errors.Wrap(farmerr.ErrFailedTransaction,
			"current inventory is not fancy enough, please purchase products one at a time")
	}
	return inv.RemoveProduct(barcode), nil
}

// AllProducts returns the stock in insertion order.
func (inv *Basic) AllProducts() []product.Product {
	return slices.Clone(inv.products)
}

// SupportsBulk is always false.
func (inv *Basic) SupportsBulk() bool {
	return false
}
