package farm

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xenking/farm-shop/internal/domain/transaction"
)

const meterName = "github.com/xenking/farm-shop/internal/domain/farm"

type salesMetrics struct {
	checkouts     metric.Int64Counter
	grossEarnings metric.Int64Counter
	productsSold  metric.Int64Counter
}

func newSalesMetrics(mp metric.MeterProvider) (*salesMetrics, error) {
	meter := mp.Meter(meterName)

	checkouts, err := meter.Int64Counter("farm.checkouts",
		metric.WithDescription("Number of recorded transactions"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "checkouts counter")
	}
	grossEarnings, err := meter.Int64Counter("farm.gross_earnings_cents",
		metric.WithDescription("Total of recorded transactions"),
		metric.WithUnit("{cent}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "gross earnings counter")
	}
	productsSold, err := meter.Int64Counter("farm.products_sold",
		metric.WithDescription("Units sold, by product kind"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "products sold counter")
	}

	return &salesMetrics{
		checkouts:     checkouts,
		grossEarnings: grossEarnings,
		productsSold:  productsSold,
	}, nil
}

func (m *salesMetrics) recordCheckout(ctx context.Context, t transaction.Transaction) {
	kind := metric.WithAttributes(attribute.String("transaction.kind", kindOf(t).String()))
	m.checkouts.Add(ctx, 1, kind)
	m.grossEarnings.Add(ctx, int64(t.Total()), kind)

	counts := make(map[string]int64)
	for _, p := range t.Purchases() {
		counts[p.Barcode.String()]++
	}
	for barcode, n := range counts {
		m.productsSold.Add(ctx, n, metric.WithAttributes(attribute.String("product.barcode", barcode)))
	}
}

func kindOf(t transaction.Transaction) transaction.Kind {
	switch t.(type) {
	case transaction.Discounted:
		return transaction.KindSpecialSale
	case transaction.Categorised:
		return transaction.KindCategorised
	default:
		return transaction.KindPlain
	}
}
