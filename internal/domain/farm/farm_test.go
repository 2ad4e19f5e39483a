package farm

import (
	"context"
	"testing"

	"github.com/go-faster/sdk/zctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xenking/farm-shop/internal/domain/customer"
	"github.com/xenking/farm-shop/internal/domain/discount"
	"github.com/xenking/farm-shop/internal/domain/farmerr"
	"github.com/xenking/farm-shop/internal/domain/inventory"
	"github.com/xenking/farm-shop/internal/domain/product"
	"github.com/xenking/farm-shop/internal/domain/transaction"
)

func newFarm(t *testing.T, inv inventory.Inventory, opts ...Option) (*Farm, *customer.Customer) {
	t.Helper()
	f, err := New(inv, customer.NewAddressBook(), opts...)
	require.NoError(t, err)

	c := customer.New("Ali", 33, "1st Street")
	require.NoError(t, f.SaveCustomer(context.Background(), c))
	return f, c
}

func TestFarm_SaveCustomer(t *testing.T) {
	ctx := context.Background()
	f, c := newFarm(t, inventory.NewFancy())

	err := f.SaveCustomer(ctx, customer.New(c.Name, c.PhoneNumber, c.Address))
	require.ErrorIs(t, err, farmerr.ErrDuplicateCustomer)
	assert.Len(t, f.AllCustomers(), 1)

	got, err := f.Customer("Ali", 33)
	require.NoError(t, err)
	assert.Same(t, c, got)

	_, err = f.Customer("Ali", 34)
	require.ErrorIs(t, err, farmerr.ErrCustomerNotFound)
}

func TestFarm_StockProducts(t *testing.T) {
	tests := []struct {
		name     string
		inv      inventory.Inventory
		quantity int
		wantErr  error
		wantLen  int
	}{
		{name: "fancy bulk", inv: inventory.NewFancy(), quantity: 3, wantLen: 3},
		{name: "basic single", inv: inventory.NewBasic(), quantity: 1, wantLen: 1},
		{name: "basic bulk", inv: inventory.NewBasic(), quantity: 2, wantErr: farmerr.ErrInvalidStockRequest},
		{name: "zero", inv: inventory.NewFancy(), quantity: 0, wantErr: farmerr.ErrInvalidArgument},
		{name: "negative on basic", inv: inventory.NewBasic(), quantity: -2, wantErr: farmerr.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newFarm(t, tt.inv)
			err := f.StockProducts(context.Background(), product.Milk, product.Gold, tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.AllStock())
				return
			}
			require.NoError(t, err)
			assert.Len(t, f.AllStock(), tt.wantLen)
		})
	}
}

func TestFarm_StockProductsQuantityError(t *testing.T) {
	f, _ := newFarm(t, inventory.NewFancy())

	err := f.StockProducts(context.Background(), product.Egg, product.Regular, 0)

	var qe *farmerr.QuantityError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, 0, qe.Quantity)
}

func TestFarm_StartTransaction(t *testing.T) {
	ctx := context.Background()
	f, c := newFarm(t, inventory.NewFancy())

	stranger := customer.New("Bea", 1, "Elsewhere")
	err := f.StartTransaction(ctx, transaction.New(stranger))
	require.ErrorIs(t, err, farmerr.ErrFailedTransaction)
	assert.False(t, f.Manager().HasOngoingTransaction())

	// An equal customer record is enough.
	require.NoError(t, f.StartTransaction(ctx, transaction.New(customer.New("Ali", 33, "1st Street"))))

	err = f.StartTransaction(ctx, transaction.New(c))
	require.ErrorIs(t, err, farmerr.ErrFailedTransaction)

	require.ErrorIs(t, f.StartTransaction(ctx, nil), farmerr.ErrInvalidArgument)
}

func TestFarm_AddToCart(t *testing.T) {
	ctx := context.Background()
	f, c := newFarm(t, inventory.NewFancy())
	f.StockProduct(ctx, product.Egg, product.Regular)
	f.StockProduct(ctx, product.Egg, product.Gold)

	_, err := f.AddToCart(ctx, product.Egg)
	require.ErrorIs(t, err, farmerr.ErrFailedTransaction)

	require.NoError(t, f.StartTransaction(ctx, transaction.New(c)))

	n, err := f.AddToCart(ctx, product.Egg)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []product.Product{product.New(product.Egg, product.Gold)}, c.Cart().Contents())

	n, err = f.AddToCart(ctx, product.Wool)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Len(t, f.AllStock(), 1)
}

func TestFarm_AddToCartQuantity(t *testing.T) {
	tests := []struct {
		name     string
		inv      func() inventory.Inventory
		stock    int
		quantity int
		want     int
		wantErr  error
	}{
		{name: "fancy partial", inv: func() inventory.Inventory { return inventory.NewFancy() }, stock: 2, quantity: 5, want: 2},
		{name: "fancy exact", inv: func() inventory.Inventory { return inventory.NewFancy() }, stock: 3, quantity: 3, want: 3},
		{name: "basic single", inv: func() inventory.Inventory { return inventory.NewBasic() }, stock: 1, quantity: 1, want: 1},
		{name: "basic bulk", inv: func() inventory.Inventory { return inventory.NewBasic() }, stock: 1, quantity: 2, wantErr: farmerr.ErrFailedTransaction},
		{name: "zero", inv: func() inventory.Inventory { return inventory.NewFancy() }, stock: 1, quantity: 0, wantErr: farmerr.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f, c := newFarm(t, tt.inv())
			for range tt.stock {
				f.StockProduct(ctx, product.Jam, product.Silver)
			}
			require.NoError(t, f.StartTransaction(ctx, transaction.NewCategorised(c)))

			n, err := f.AddToCartQuantity(ctx, product.Jam, tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, f.AllStock(), tt.stock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
			assert.Equal(t, tt.want, c.Cart().Len())
			assert.Len(t, f.AllStock(), tt.stock-tt.want)
		})
	}
}

func TestFarm_AddToCartQuantityWithoutTransaction(t *testing.T) {
	f, _ := newFarm(t, inventory.NewFancy())

	_, err := f.AddToCartQuantity(context.Background(), product.Jam, 2)
	require.ErrorIs(t, err, farmerr.ErrFailedTransaction)
}

func TestFarm_Checkout(t *testing.T) {
	ctx := context.Background()
	f, c := newFarm(t, inventory.NewFancy())
	require.NoError(t, f.StockProducts(ctx, product.Milk, product.Regular, 3))

	_, err := f.Checkout(ctx)
	require.ErrorIs(t, err, farmerr.ErrFailedTransaction)
	assert.Equal(t, NoTransactionsReceipt, f.LastReceipt())

	// Empty transactions are not recorded.
	require.NoError(t, f.StartTransaction(ctx, transaction.New(c)))
	ok, err := f.Checkout(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, f.History().TotalTransactionsMade())
	assert.False(t, f.Manager().HasOngoingTransaction())

	require.NoError(t, f.StartTransaction(ctx, f.NewTransaction(transaction.KindCategorised, c)))
	_, err = f.AddToCartQuantity(ctx, product.Milk, 2)
	require.NoError(t, err)

	ok, err = f.Checkout(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, c.Cart().IsEmpty())
	assert.Equal(t, 1, f.History().TotalTransactionsMade())
	assert.Equal(t, 880, f.History().GrossEarnings())
	assert.Contains(t, f.LastReceipt(), "Thank you for shopping with us, Ali!")
	assert.Contains(t, f.LastReceipt(), transaction.DefaultBanner.Name)
}

func TestFarm_NewTransactionUsesOptions(t *testing.T) {
	banner := transaction.Banner{Name: "Hill Farm", Address: "Top of the hill"}
	table := discount.MustTable(map[product.Barcode]int{product.Wool: 20})
	f, c := newFarm(t, inventory.NewFancy(), WithBanner(banner), WithDiscounts(table))

	assert.Equal(t, table, f.Discounts())

	tx := f.NewTransaction(transaction.KindSpecialSale, c)
	sale, ok := tx.(*transaction.SpecialSale)
	require.True(t, ok)
	assert.Equal(t, 20, sale.DiscountAmount(product.Wool))

	c.Cart().Add(product.New(product.Wool, product.Regular))
	sale.Finalise()
	assert.Contains(t, sale.Receipt(), "Hill Farm")
	assert.Contains(t, sale.Receipt(), "Discount applied! 20% off wool")
}

func TestFarm_Metrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	f, c := newFarm(t, inventory.NewFancy(), WithMeterProvider(mp))
	require.NoError(t, f.StockProducts(ctx, product.Egg, product.Regular, 2))
	f.StockProduct(ctx, product.Wool, product.Iridium)

	require.NoError(t, f.StartTransaction(ctx, transaction.NewCategorised(c)))
	_, err := f.AddToCartQuantity(ctx, product.Egg, 2)
	require.NoError(t, err)
	_, err = f.AddToCart(ctx, product.Wool)
	require.NoError(t, err)
	_, err = f.Checkout(ctx)
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			data, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, m.Name)
			for _, dp := range data.DataPoints {
				sums[m.Name] += dp.Value
			}
		}
	}

	assert.Equal(t, map[string]int64{
		"farm.checkouts":            1,
		"farm.gross_earnings_cents": 2950,
		"farm.products_sold":        3,
	}, sums)
}

func TestFarm_LogsThroughContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := zctx.Base(context.Background(), zap.New(core))

	f, c := newFarm(t, inventory.NewFancy())
	f.StockProduct(ctx, product.Jam, product.Regular)
	require.NoError(t, f.StartTransaction(ctx, transaction.New(c)))
	_, err := f.AddToCart(ctx, product.Jam)
	require.NoError(t, err)
	_, err = f.Checkout(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("Transaction started").Len())
	recorded := logs.FilterMessage("Transaction recorded").All()
	require.Len(t, recorded, 1)
	assert.Equal(t, int64(670), recorded[0].ContextMap()["total_cents"])
}
