package transaction

import (
	"github.com/xenking/farm-shop/internal/domain/customer"
	"github.com/xenking/farm-shop/internal/domain/discount"
	"github.com/xenking/farm-shop/internal/domain/product"
)

var _ Discounted = (*SpecialSale)(nil)

// SpecialSale is a categorised transaction that takes a percentage off
// selected kinds.
type SpecialSale struct {
	CategorisedTransaction
	discounts discount.Table
}

// NewSpecialSale starts a special sale for c. A zero table discounts nothing.
func NewSpecialSale(c *customer.Customer, discounts discount.Table, opts ...Option) *SpecialSale {
	return &SpecialSale{
		CategorisedTransaction: CategorisedTransaction{base: newBase(c, opts)},
		discounts:              discounts,
	}
}

// Discounts returns the discount table in effect.
func (t *SpecialSale) Discounts() discount.Table {
	return t.discounts
}

// DiscountAmount returns the percentage taken off b, or 0.
func (t *SpecialSale) DiscountAmount(b product.Barcode) int {
	return t.discounts.Percent(b)
}

// PurchaseSubtotal returns the discounted price of all units of b.
func (t *SpecialSale) PurchaseSubtotal(b product.Barcode) int {
	return t.discounts.Apply(b, t.CategorisedTransaction.PurchaseSubtotal(b))
}

// DiscountSaved returns the cents taken off the b subtotal.
func (t *SpecialSale) DiscountSaved(b product.Barcode) int {
	return t.CategorisedTransaction.PurchaseSubtotal(b) - t.PurchaseSubtotal(b)
}

// TotalSaved returns the cents saved across every kind.
func (t *SpecialSale) TotalSaved() int {
	saved := 0
	for _, b := range t.PurchasedTypes() {
		saved += t.DiscountSaved(b)
	}
	return saved
}

// Total returns the sum of the discounted per-kind subtotals.
func (t *SpecialSale) Total() int {
	return sumSubtotals(t)
}

// Receipt renders the receipt with a note under each discounted row and the
// total savings, or the active placeholder.
func (t *SpecialSale) Receipt() string {
	if !t.finalised {
		return activeReceipt(t.banner)
	}
	return renderReceipt(t.banner, rowsFor(t, t.DiscountAmount), t.Total(), t.customer.Name, t.TotalSaved())
}

func (t *SpecialSale) String() string {
	return t.describe(", Discounts: " + t.discounts.String())
}
