package shopfront

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/farm-shop/internal/domain/customer"
	"github.com/xenking/farm-shop/internal/domain/farm"
	"github.com/xenking/farm-shop/internal/domain/farmerr"
	"github.com/xenking/farm-shop/internal/domain/inventory"
	"github.com/xenking/farm-shop/internal/domain/product"
	"github.com/xenking/farm-shop/internal/domain/sales"
	"github.com/xenking/farm-shop/internal/domain/transaction"
)

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func newFarm(t *testing.T, inv inventory.Inventory) *farm.Farm {
	t.Helper()
	f, err := farm.New(inv, customer.NewAddressBook())
	require.NoError(t, err)
	return f
}

func run(t *testing.T, f Farm, in *strings.Reader) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(f, in, &out).Run(context.Background()))
	return out.String()
}

func TestShopFront_FullSession(t *testing.T) {
	f := newFarm(t, inventory.NewFancy())

	out := run(t, f, script(
		"address",
		"add", "Ali", "33", "1st Street",
		"list",
		"q",
		"inventory",
		"add milk -o gold 3",
		"add egg",
		"add cheese",
		"list",
		"q",
		"sales",
		"start -c", "Ali", "33",
		"add milk 2",
		"add egg",
		"checkout",
		"q",
		"history",
		"popular",
		"stats -json",
		"q",
		"q",
	))

	for _, want := range []string{
		"Welcome to the farm shop!",
		msgCustomerAdded,
		"Name: Ali | Phone Number: 33 | Address: 1st Street",
		"Added 3 Milk (GOLD) to the inventory.",
		"Added 1 Egg (REGULAR) to the inventory.",
		msgInvalidProduct,
		"Milk: 440c GOLD",
		msgTransactionStarted,
		"Added 2 Milk to the cart.",
		"Added 1 Egg to the cart.",
		"Total:                  $9.30",
		"Thank you for shopping with us, Ali!",
		"Most popular product: Milk",
		`"most_popular"`,
		"Thank you for using the farm shop!",
	} {
		assert.Contains(t, out, want)
	}

	assert.Equal(t, 1, f.History().TotalTransactionsMade())
	assert.Len(t, f.AllStock(), 1)
}

func TestShopFront_LastReceiptHasNoTrailingBlankLine(t *testing.T) {
	f := newFarm(t, inventory.NewFancy())
	require.NoError(t, f.SaveCustomer(context.Background(), customer.New("Zoë", 7, "Mill Road")))
	f.StockProduct(context.Background(), product.Jam, product.Regular)

	out := run(t, f, script(
		"sales", "start -c", "Zoë", "7", "add jam", "checkout", "q",
		"history", "last", "q",
		"q",
	))

	receipt := f.LastReceipt()
	assert.Equal(t, 2, strings.Count(out, receipt))
	assert.NotContains(t, out, strings.Repeat("=", 48)+"\n\n")
	// Centred by characters, not bytes.
	assert.Contains(t, receipt, "\n"+strings.Repeat(" ", 6)+"Thank you for shopping with us, Zoë!\n")
}

func TestShopFront_EndOfInputStops(t *testing.T) {
	out := run(t, newFarm(t, inventory.NewFancy()), script("inventory", "list"))

	assert.Contains(t, out, msgInventoryEmpty)
	assert.Contains(t, out, "Thank you for using the farm shop!")
}

func TestShopFront_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(newFarm(t, inventory.NewFancy()), script("q"), &out).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestShopFront_Messages(t *testing.T) {
	tests := []struct {
		name  string
		inv   inventory.Inventory
		lines []string
		want  []string
	}{
		{
			name:  "unknown mode",
			lines: []string{"garden", "q"},
			want:  []string{msgIncorrectArguments},
		},
		{
			name:  "unknown command",
			lines: []string{"sales", "refund", "q", "q"},
			want:  []string{msgIncorrectArguments},
		},
		{
			name:  "invalid phone",
			lines: []string{"address", "add", "Ali", "not-a-number", "q", "q"},
			want:  []string{msgInvalidPhone},
		},
		{
			name: "duplicate customer",
			lines: []string{
				"address",
				"add", "Ali", "33", "x",
				"add", "Ali", "33", "x",
				"q", "q",
			},
			want: []string{msgCustomerAdded, msgDuplicateCustomer},
		},
		{
			name:  "customer not found",
			lines: []string{"sales", "start", "Bea", "1", "q", "q"},
			want:  []string{msgCustomerNotFound},
		},
		{
			name:  "add without transaction",
			lines: []string{"sales", "add egg", "q", "q"},
			want:  []string{"Failed to add to cart:", "failed transaction"},
		},
		{
			name:  "checkout without transaction",
			lines: []string{"sales", "checkout", "q", "q"},
			want:  []string{"Checkout failed:"},
		},
		{
			name: "out of stock and empty checkout",
			lines: []string{
				"address", "add", "Ali", "33", "x", "q",
				"sales", "start -s", "Ali", "33", "add wool", "checkout", "q",
				"history", "last", "grossing", "popular", "q",
				"q",
			},
			want: []string{msgOutOfStock, msgEmptyCheckout, msgNoTransactions, msgNothingSold},
		},
		{
			name:  "basic inventory rejects bulk stock",
			inv:   inventory.NewBasic(),
			lines: []string{"inventory", "add jam 2", "q", "q"},
			want:  []string{"Failed to add product:", "invalid stock request"},
		},
		{
			name:  "bad quality and quantity",
			lines: []string{"inventory", "add jam -o diamond", "add jam lots", "add", "q", "q"},
			want:  []string{msgInvalidQuality, msgInvalidQuantity, msgIncorrectArguments},
		},
		{
			name:  "bad start flag",
			lines: []string{"sales", "start -x", "q", "q"},
			want:  []string{msgIncorrectArguments},
		},
		{
			name:  "plain stats",
			lines: []string{"history", "stats", "q", "q"},
			want:  []string{"Transactions made: 0", "Gross earnings: $0.00", "Wool: 0 sold, average discount $0.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.inv
			if inv == nil {
				inv = inventory.NewFancy()
			}
			out := run(t, newFarm(t, inv), script(tt.lines...))
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

// fakeFarm fails every sales operation with err.
type fakeFarm struct {
	err     error
	history *sales.History
	started []transaction.Kind
}

var _ Farm = (*fakeFarm)(nil)

func (f *fakeFarm) AllCustomers() []*customer.Customer { return nil }
func (f *fakeFarm) AllStock() []product.Product        { return nil }
func (f *fakeFarm) History() *sales.History            { return f.history }

func (f *fakeFarm) SaveCustomer(context.Context, *customer.Customer) error { return f.err }

func (f *fakeFarm) Customer(name string, phone int) (*customer.Customer, error) {
	return customer.New(name, phone, ""), nil
}

func (f *fakeFarm) StockProduct(context.Context, product.Barcode, product.Quality) {}

func (f *fakeFarm) StockProducts(context.Context, product.Barcode, product.Quality, int) error {
	return f.err
}

func (f *fakeFarm) NewTransaction(k transaction.Kind, c *customer.Customer) transaction.Transaction {
	f.started = append(f.started, k)
	return transaction.New(c)
}

func (f *fakeFarm) StartTransaction(context.Context, transaction.Transaction) error { return f.err }

func (f *fakeFarm) AddToCart(context.Context, product.Barcode) (int, error) { return 0, f.err }

func (f *fakeFarm) AddToCartQuantity(context.Context, product.Barcode, int) (int, error) {
	return 0, f.err
}

func (f *fakeFarm) Checkout(context.Context) (bool, error) { return false, f.err }

func (f *fakeFarm) LastReceipt() string { return "" }

func TestShopFront_ReportsFarmErrors(t *testing.T) {
	f := &fakeFarm{
		err:     errors.Wrap(farmerr.ErrFailedTransaction, "boom"),
		history: sales.NewHistory(),
	}

	out := run(t, f, script(
		"address", "add", "Ali", "33", "x", "q",
		"sales",
		"start -c", "Ali", "33",
		"start -specialsale", "Ali", "33",
		"start", "Ali", "33",
		"add milk 3",
		"q", "q",
	))

	assert.Contains(t, out, "Failed to add customer: boom: failed transaction")
	assert.Equal(t, 3, strings.Count(out, "Failed to start transaction: boom"))
	assert.Contains(t, out, "Failed to add to cart: boom")
	assert.Equal(t, []transaction.Kind{
		transaction.KindCategorised,
		transaction.KindSpecialSale,
		transaction.KindPlain,
	}, f.started)
}
