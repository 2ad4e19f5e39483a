package sales

import (
	"slices"

	"github.com/go-faster/errors"

	"github.com/xenking/farm-shop/internal/domain/farmerr"
	"github.com/xenking/farm-shop/internal/domain/product"
	"github.com/xenking/farm-shop/internal/domain/transaction"
)

// History is the append-only record of finalised transactions.
type History struct {
	entries []transaction.Transaction
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// RecordTransaction appends t. Only finalised transactions are accepted.
func (h *History) RecordTransaction(t transaction.Transaction) error {
	if t == nil {
		return errors.Wrap(farmerr.ErrInvalidArgument, "nil transaction")
	}
	if !t.IsFinalised() {
		return errors.Wrapf(farmerr.ErrInvalidArgument, "transaction %s must be finalised before recording", t.ID())
	}
	h.entries = append(h.entries, t)
	return nil
}

// Transactions returns a copy of the recorded transactions, oldest first.
func (h *History) Transactions() []transaction.Transaction {
	return slices.Clone(h.entries)
}

// LastTransaction returns the most recently recorded transaction.
func (h *History) LastTransaction() (transaction.Transaction, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	return h.entries[len(h.entries)-1], true
}

// TotalTransactionsMade returns the number of recorded transactions.
func (h *History) TotalTransactionsMade() int {
	return len(h.entries)
}

// TotalProductsSold returns the sum of every recorded total, in cents.
//
// This is a money amount, unlike TotalProductsSoldOf which counts items.
func (h *History) TotalProductsSold() int {
	sum := 0
	for _, t := range h.entries {
		sum += t.Total()
	}
	return sum
}

// TotalProductsSoldOf returns the number of units of b sold by categorised
// transactions.
func (h *History) TotalProductsSoldOf(b product.Barcode) int {
	sum := 0
	for _, t := range h.entries {
		if c, ok := t.(transaction.Categorised); ok {
			sum += c.PurchaseQuantity(b)
		}
	}
	return sum
}

// GrossEarnings returns the total income in cents.
func (h *History) GrossEarnings() int {
	return h.TotalProductsSold()
}

// GrossEarningsOf delegates to TotalProductsSoldOf.
func (h *History) GrossEarningsOf(b product.Barcode) int {
	return h.TotalProductsSoldOf(b)
}

// HighestGrossingTransaction returns the transaction with the largest total.
// The earliest recorded wins a tie.
func (h *History) HighestGrossingTransaction() (transaction.Transaction, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	best := h.entries[0]
	for _, t := range h.entries[1:] {
		if t.Total() > best.Total() {
			best = t
		}
	}
	return best, true
}

// MostPopularProduct returns the kind with the most units sold. Ties go to
// the kind declared first, so a history without categorised sales yields the
// first kind. It reports false when no transaction has been recorded.
func (h *History) MostPopularProduct() (product.Barcode, bool) {
	var (
		best  product.Barcode
		count int
	)
	for _, b := range product.Barcodes() {
		if n := h.TotalProductsSoldOf(b); n > count {
			best, count = b, n
		}
	}
	if count == 0 {
		best = product.Barcodes()[0]
	}
	return best, len(h.entries) > 0
}

// AverageSpendPerVisit returns the mean total per transaction in cents.
func (h *History) AverageSpendPerVisit() float64 {
	if len(h.entries) == 0 {
		return 0
	}
	return float64(h.GrossEarnings()) / float64(len(h.entries))
}

// AverageProductDiscount returns the mean cents saved per unit of b sold.
func (h *History) AverageProductDiscount(b product.Barcode) float64 {
	sold := h.TotalProductsSoldOf(b)
	if sold == 0 {
		return 0
	}
	saved := 0
	for _, t := range h.entries {
		if d, ok := t.(transaction.Discounted); ok {
			saved += d.DiscountSaved(b)
		}
	}
	return float64(saved) / float64(sold)
}
