package transaction

import (
	"github.com/xenking/farm-shop/internal/domain/customer"
	"github.com/xenking/farm-shop/internal/domain/product"
)

var _ Categorised = (*CategorisedTransaction)(nil)

// CategorisedTransaction groups purchases by product kind and prices each
// kind as a unit.
type CategorisedTransaction struct {
	base
}

// NewCategorised starts a categorised transaction for c.
func NewCategorised(c *customer.Customer, opts ...Option) *CategorisedTransaction {
	return &CategorisedTransaction{base: newBase(c, opts)}
}

// PurchasesByType returns the purchases grouped by kind. Each group keeps
// the order products were added in.
func (t *CategorisedTransaction) PurchasesByType() map[product.Barcode][]product.Product {
	return groupByType(t.Purchases())
}

// PurchasedTypes returns the kinds present, in declaration order.
func (t *CategorisedTransaction) PurchasedTypes() []product.Barcode {
	return sortedTypes(t.PurchasesByType())
}

// PurchaseQuantity returns how many units of b were purchased.
func (t *CategorisedTransaction) PurchaseQuantity(b product.Barcode) int {
	n := 0
	for _, p := range t.Purchases() {
		if p.Barcode == b {
			n++
		}
	}
	return n
}

// PurchaseSubtotal returns the undiscounted price of all units of b.
func (t *CategorisedTransaction) PurchaseSubtotal(b product.Barcode) int {
	return t.PurchaseQuantity(b) * b.BasePrice()
}

// Total returns the sum of the per-kind subtotals.
func (t *CategorisedTransaction) Total() int {
	return sumSubtotals(t)
}

// Receipt renders the receipt, or the active placeholder.
func (t *CategorisedTransaction) Receipt() string {
	if !t.finalised {
		return activeReceipt(t.banner)
	}
	return renderReceipt(t.banner, rowsFor(t, nil), t.Total(), t.customer.Name, 0)
}

func (t *CategorisedTransaction) String() string {
	return t.describe("")
}

type pricer interface {
	PurchasedTypes() []product.Barcode
	PurchaseQuantity(b product.Barcode) int
	PurchaseSubtotal(b product.Barcode) int
}

func sumSubtotals(p pricer) int {
	total := 0
	for _, b := range p.PurchasedTypes() {
		total += p.PurchaseSubtotal(b)
	}
	return total
}

func rowsFor(p pricer, percent func(product.Barcode) int) []receiptRow {
	types := p.PurchasedTypes()
	rows := make([]receiptRow, 0, len(types))
	for _, b := range types {
		row := receiptRow{
			barcode:  b,
			quantity: p.PurchaseQuantity(b),
			subtotal: p.PurchaseSubtotal(b),
		}
		if percent != nil {
			row.discount = percent(b)
		}
		rows = append(rows, row)
	}
	return rows
}

func groupByType(products []product.Product) map[product.Barcode][]product.Product {
	groups := make(map[product.Barcode][]product.Product)
	for _, p := range products {
		groups[p.Barcode] = append(groups[p.Barcode], p)
	}
	return groups
}

func sortedTypes(groups map[product.Barcode][]product.Product) []product.Barcode {
	types := make([]product.Barcode, 0, len(groups))
	for _, b := range product.Barcodes() {
		if len(groups[b]) > 0 {
			types = append(types, b)
		}
	}
	return types
}
