// Package farm ties the inventory, address book and sales records together
// behind the operations the shop front offers.
package farm

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"

	"github.com/xenking/farm-shop/internal/domain/customer"
	"github.com/xenking/farm-shop/internal/domain/discount"
	"github.com/xenking/farm-shop/internal/domain/farmerr"
	"github.com/xenking/farm-shop/internal/domain/inventory"
	"github.com/xenking/farm-shop/internal/domain/product"
	"github.com/xenking/farm-shop/internal/domain/sales"
	"github.com/xenking/farm-shop/internal/domain/transaction"
)

// NoTransactionsReceipt is returned by LastReceipt before any sale.
const NoTransactionsReceipt = "No transactions available."

// Option configures a Farm.
type Option func(*options)

type options struct {
	meters    metric.MeterProvider
	banner    transaction.Banner
	discounts discount.Table
}

// WithMeterProvider sets the provider sales counters are registered with.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meters = mp
	}
}

// WithBanner sets the shop details printed on receipts of transactions
// created by NewTransaction.
func WithBanner(b transaction.Banner) Option {
	return func(o *options) {
		o.banner = b
	}
}

// WithDiscounts sets the table used by special sales created by
// NewTransaction.
func WithDiscounts(t discount.Table) Option {
	return func(o *options) {
		o.discounts = t
	}
}

// Farm is the shop: stock, customers, the ongoing sale and the sales record.
type Farm struct {
	inventory inventory.Inventory
	book      *customer.AddressBook
	manager   *sales.Manager
	history   *sales.History

	metrics   *salesMetrics
	banner    transaction.Banner
	discounts discount.Table
}

// New creates a Farm over inv and book with a fresh manager and history.
func New(inv inventory.Inventory, book *customer.AddressBook, opts ...Option) (*Farm, error) {
	o := options{
		meters: noop.NewMeterProvider(),
		banner: transaction.DefaultBanner,
	}
	for _, opt := range opts {
		opt(&o)
	}

	m, err := newSalesMetrics(o.meters)
	if err != nil {
		return nil, errors.Wrap(err, "create metrics")
	}

	return &Farm{
		inventory: inv,
		book:      book,
		manager:   sales.NewManager(),
		history:   sales.NewHistory(),
		metrics:   m,
		banner:    o.banner,
		discounts: o.discounts,
	}, nil
}

// AllCustomers returns a copy of the address book records.
func (f *Farm) AllCustomers() []*customer.Customer {
	return f.book.All()
}

// AllStock returns a copy of the inventory contents.
func (f *Farm) AllStock() []product.Product {
	return f.inventory.AllProducts()
}

func (f *Farm) Manager() *sales.Manager {
	return f.manager
}

func (f *Farm) History() *sales.History {
	return f.history
}

// Discounts returns the table special sales are started with.
func (f *Farm) Discounts() discount.Table {
	return f.discounts
}

// SaveCustomer adds c to the address book.
func (f *Farm) SaveCustomer(ctx context.Context, c *customer.Customer) error {
	if err := f.book.Add(c); err != nil {
		return errors.Wrap(err, "save customer")
	}
	zctx.From(ctx).Debug("Customer saved", zap.String("customer", c.Name), zap.Int("phone", c.PhoneNumber))
	return nil
}

// Customer looks up a customer by name and phone number.
func (f *Farm) Customer(name string, phone int) (*customer.Customer, error) {
	return f.book.Find(name, phone)
}

// StockProduct adds a single unit to the inventory.
func (f *Farm) StockProduct(ctx context.Context, b product.Barcode, q product.Quality) {
	f.inventory.AddProduct(b, q)
	zctx.From(ctx).Debug("Product stocked",
		zap.Stringer("barcode", b),
		zap.Stringer("quality", q),
	)
}

// StockProducts adds quantity units. Quantities above one need an inventory
// that supports bulk operations.
func (f *Farm) StockProducts(ctx context.Context, b product.Barcode, q product.Quality, quantity int) error {
	if quantity < 1 {
		return errors.Wrap(farmerr.NonPositiveQuantity(quantity, farmerr.ErrInvalidArgument), "stock products")
	}
	if quantity > 1 && !f.inventory.SupportsBulk() {
		return errors.Wrap(farmerr.ErrInvalidStockRequest, "inventory does not support adding more than one product at a time")
	}
	if err := f.inventory.AddProducts(b, q, quantity); err != nil {
		return errors.Wrap(err, "stock products")
	}
	zctx.From(ctx).Debug("Products stocked",
		zap.Stringer("barcode", b),
		zap.Stringer("quality", q),
		zap.Int("quantity", quantity),
	)
	return nil
}

// NewTransaction builds a transaction of kind k for c using the farm's
// banner and discount table. It does not start it.
func (f *Farm) NewTransaction(k transaction.Kind, c *customer.Customer) transaction.Transaction {
	return transaction.NewOfKind(k, c, f.discounts, transaction.WithBanner(f.banner))
}

// StartTransaction makes t the ongoing transaction. The customer must be in
// the address book and no other transaction may be ongoing.
func (f *Farm) StartTransaction(ctx context.Context, t transaction.Transaction) error {
	if t == nil {
		return errors.Wrap(farmerr.ErrInvalidArgument, "nil transaction")
	}
	if !f.book.Contains(t.Customer()) {
		return errors.Wrapf(farmerr.ErrFailedTransaction, "customer %s is not in the address book", t.Customer().Name)
	}
	if err := f.manager.SetOngoingTransaction(t); err != nil {
		return errors.Wrap(err, "start transaction")
	}
	zctx.From(ctx).Info("Transaction started",
		zap.String("transaction_id", t.ID()),
		zap.String("customer", t.Customer().Name),
	)
	return nil
}

// AddToCart moves one unit of b from the inventory into the ongoing
// customer's cart. It returns the number of units moved, 0 or 1.
func (f *Farm) AddToCart(ctx context.Context, b product.Barcode) (int, error) {
	if !f.manager.HasOngoingTransaction() {
		return 0, errors.Wrap(farmerr.ErrFailedTransaction, "cannot add to cart when no customer has started shopping")
	}
	return f.moveToCart(ctx, f.inventory.RemoveProduct(b))
}

// AddToCartQuantity moves up to quantity units of b into the cart and
// returns how many were moved. Quantities above one need an inventory that
// supports bulk operations.
func (f *Farm) AddToCartQuantity(ctx context.Context, b product.Barcode, quantity int) (int, error) {
	if quantity < 1 {
		return 0, errors.Wrap(farmerr.NonPositiveQuantity(quantity, farmerr.ErrInvalidArgument), "add to cart")
	}
	if !f.manager.HasOngoingTransaction() {
		return 0, errors.Wrap(farmerr.ErrFailedTransaction, "cannot add to cart when no customer has started shopping")
	}
	if quantity == 1 {
		return f.AddToCart(ctx, b)
	}
	if !f.inventory.SupportsBulk() {
		return 0, errors.Wrap(farmerr.ErrFailedTransaction, "inventory does not support purchasing more than one product at a time")
	}
	removed, err := f.inventory.RemoveProducts(b, quantity)
	if err != nil {
		return 0, errors.Wrap(err, "remove products")
	}
	return f.moveToCart(ctx, removed)
}

func (f *Farm) moveToCart(ctx context.Context, products []product.Product) (int, error) {
	for i, p := range products {
		if err := f.manager.RegisterPendingPurchase(p); err != nil {
			// Return units that never reached the cart.
			for _, back := range products[i:] {
				f.inventory.AddProduct(back.Barcode, back.Quality)
			}
			return i, errors.Wrap(err, "register purchase")
		}
	}
	if len(products) > 0 {
		zctx.From(ctx).Debug("Added to cart",
			zap.Stringer("barcode", products[0].Barcode),
			zap.Int("quantity", len(products)),
		)
	}
	return len(products), nil
}

// Checkout closes the ongoing transaction. A transaction with purchases is
// recorded and true is returned; an empty one is discarded.
func (f *Farm) Checkout(ctx context.Context) (bool, error) {
	t, err := f.manager.CloseCurrentTransaction()
	if err != nil {
		return false, errors.Wrap(err, "checkout")
	}

	purchases := t.Purchases()
	lg := zctx.From(ctx).With(
		zap.String("transaction_id", t.ID()),
		zap.String("customer", t.Customer().Name),
	)
	if len(purchases) == 0 {
		lg.Info("Empty transaction discarded")
		return false, nil
	}
	if err := f.history.RecordTransaction(t); err != nil {
		return false, errors.Wrap(err, "record transaction")
	}

	f.metrics.recordCheckout(ctx, t)
	lg.Info("Transaction recorded",
		zap.Int("products", len(purchases)),
		zap.Int("total_cents", t.Total()),
	)
	return true, nil
}

// LastReceipt returns the receipt of the most recent recorded transaction.
func (f *Farm) LastReceipt() string {
	t, ok := f.history.LastTransaction()
	if !ok {
		return NoTransactionsReceipt
	}
	return t.Receipt()
}
