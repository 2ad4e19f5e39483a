package app

import (
	"context"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/farm-shop/internal/domain/customer"
	"github.com/xenking/farm-shop/internal/domain/farm"
	"github.com/xenking/farm-shop/internal/domain/inventory"
	"github.com/xenking/farm-shop/internal/domain/transaction"
	"github.com/xenking/farm-shop/internal/shopfront"
)

// Run builds the farm, seeds it from cfg and serves the shop front on in and
// out until the user quits. It is the single wiring point for the
// application.
func Run(ctx context.Context, lg *zap.Logger, mp metric.MeterProvider, cfg *Config, in io.Reader, out io.Writer) error {
	ctx = zctx.Base(ctx, lg)

	f, err := NewFarm(ctx, cfg, mp)
	if err != nil {
		return err
	}

	lg.Info("Farm ready",
		zap.String("shop", cfg.Shop.Name),
		zap.Bool("fancy", cfg.Inventory.Fancy),
		zap.Int("stock", len(f.AllStock())),
		zap.Int("customers", len(f.AllCustomers())),
	)
	if err := shopfront.New(f, in, out).Run(ctx); err != nil {
		return errors.Wrap(err, "shop front")
	}
	return nil
}

// NewFarm creates a farm configured by cfg with its stock and customers
// seeded.
func NewFarm(ctx context.Context, cfg *Config, mp metric.MeterProvider) (*farm.Farm, error) {
	discounts, err := cfg.DiscountTable()
	if err != nil {
		return nil, err
	}

	var inv inventory.Inventory = inventory.NewBasic()
	if cfg.Inventory.Fancy {
		inv = inventory.NewFancy()
	}

	f, err := farm.New(inv, customer.NewAddressBook(),
		farm.WithMeterProvider(mp),
		farm.WithBanner(transaction.Banner{Name: cfg.Shop.Name, Address: cfg.Shop.Address}),
		farm.WithDiscounts(discounts),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create farm")
	}

	if err := seed(ctx, f, cfg, inv.SupportsBulk()); err != nil {
		return nil, errors.Wrap(err, "seed farm")
	}
	return f, nil
}

func seed(ctx context.Context, f *farm.Farm, cfg *Config, bulk bool) error {
	stock, err := cfg.StockEntries()
	if err != nil {
		return err
	}
	for _, e := range stock {
		if bulk {
			if err := f.StockProducts(ctx, e.Barcode, e.Quality, e.Quantity); err != nil {
				return errors.Wrapf(err, "stock %s", e.Barcode)
			}
			continue
		}
		for range e.Quantity {
			f.StockProduct(ctx, e.Barcode, e.Quality)
		}
	}

	customers, err := cfg.CustomerRecords()
	if err != nil {
		return err
	}
	for _, c := range customers {
		if err := f.SaveCustomer(ctx, c); err != nil {
			return errors.Wrapf(err, "customer %s", c.Name)
		}
	}
	return nil
}
