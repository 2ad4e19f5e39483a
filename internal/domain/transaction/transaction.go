// Package transaction prices a customer's purchases.
//
// A transaction is Active until Finalise is called. While active it reads
// the customer's live cart so shopping can continue; Finalise snapshots the
// cart, empties it, and freezes purchases and total for good.
package transaction

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/xenking/farm-shop/internal/domain/customer"
	"github.com/xenking/farm-shop/internal/domain/product"
)

// Transaction is the behaviour shared by every kind of transaction.
type Transaction interface {
	ID() string
	Customer() *customer.Customer
	// Purchases returns a copy of the purchased products: the live cart while
	// active, the frozen snapshot once finalised.
	Purchases() []product.Product
	IsFinalised() bool
	// Finalise freezes the transaction and empties the customer's cart.
	// Calling it again has no effect.
	Finalise()
	// Total returns the amount due in cents.
	Total() int
	Receipt() string
	String() string
}

// Categorised is a transaction that prices purchases per product kind.
type Categorised interface {
	Transaction
	PurchasedTypes() []product.Barcode
	PurchasesByType() map[product.Barcode][]product.Product
	PurchaseQuantity(b product.Barcode) int
	PurchaseSubtotal(b product.Barcode) int
}

// Discounted is a categorised transaction with per-kind percentage discounts.
type Discounted interface {
	Categorised
	DiscountAmount(b product.Barcode) int
	DiscountSaved(b product.Barcode) int
	TotalSaved() int
}

// Option configures a transaction.
type Option func(*base)

// WithBanner sets the shop details printed on the receipt.
func WithBanner(b Banner) Option {
	return func(t *base) {
		t.banner = b
	}
}

// WithID overrides the generated transaction ID.
func WithID(id string) Option {
	return func(t *base) {
		t.id = id
	}
}

// base holds the state machine shared by all transaction kinds.
type base struct {
	id        string
	customer  *customer.Customer
	banner    Banner
	finalised bool
	snapshot  []product.Product
}

func newBase(c *customer.Customer, opts []Option) base {
	b := base{
		id:       uuid.NewString(),
		customer: c,
		banner:   DefaultBanner,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// ID returns the transaction identifier.
func (t *base) ID() string {
	return t.id
}

// Customer returns the customer the transaction is for.
func (t *base) Customer() *customer.Customer {
	return t.customer
}

// IsFinalised reports whether Finalise has been called.
func (t *base) IsFinalised() bool {
	return t.finalised
}

// Finalise snapshots and clears the customer's cart.
func (t *base) Finalise() {
	if t.finalised {
		return
	}
	cart := t.customer.Cart()
	t.snapshot = cart.Contents()
	cart.Clear()
	t.finalised = true
}

// Purchases returns a copy of the purchased products.
func (t *base) Purchases() []product.Product {
	if t.finalised {
		return slices.Clone(t.snapshot)
	}
	return t.customer.Cart().Contents()
}

func (t *base) status() string {
	if t.finalised {
		return "Finalised"
	}
	return "Active"
}

func (t *base) describe(extra string) string {
	names := make([]string, 0, len(t.Purchases()))
	for _, p := range t.Purchases() {
		names = append(names, p.String())
	}
	return fmt.Sprintf("Transaction {Customer: %s | Phone Number: %d | Address: %s, Status: %s, Associated Products: [%s]%s}",
		t.customer.Name, t.customer.PhoneNumber, t.customer.Address,
		t.status(), strings.Join(names, ", "), extra)
}

var _ Transaction = (*Plain)(nil)

// Plain is a transaction charged at base prices.
type Plain struct {
	base
}

// New starts a plain transaction for c.
func New(c *customer.Customer, opts ...Option) *Plain {
	return &Plain{base: newBase(c, opts)}
}

// Total returns the sum of base prices.
func (t *Plain) Total() int {
	total := 0
	for _, p := range t.Purchases() {
		total += p.BasePrice()
	}
	return total
}

// Receipt renders the receipt, or the active placeholder.
func (t *Plain) Receipt() string {
	if !t.finalised {
		return activeReceipt(t.banner)
	}
	groups := groupByType(t.snapshot)
	rows := make([]receiptRow, 0, len(groups))
	for _, b := range sortedTypes(groups) {
		subtotal := 0
		for _, p := range groups[b] {
			subtotal += p.BasePrice()
		}
		rows = append(rows, receiptRow{barcode: b, quantity: len(groups[b]), subtotal: subtotal})
	}
	return renderReceipt(t.banner, rows, t.Total(), t.customer.Name, 0)
}

func (t *Plain) String() string {
	return t.describe("")
}
