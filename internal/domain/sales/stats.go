package sales

import (
	"github.com/go-faster/jx"

	"github.com/xenking/farm-shop/internal/domain/product"
)

// ProductStats is the per-kind part of Stats.
type ProductStats struct {
	Barcode         product.Barcode
	Sold            int
	GrossEarnings   int
	AverageDiscount float64
}

// TransactionSummary identifies a recorded transaction.
type TransactionSummary struct {
	ID       string
	Customer string
	Total    int
}

// Stats is a point-in-time snapshot of the history statistics.
type Stats struct {
	Transactions    int
	GrossEarnings   int
	AverageSpend    float64
	HighestGrossing *TransactionSummary
	MostPopular     *product.Barcode
	Products        []ProductStats
}

// Stats computes a snapshot of every statistic.
func (h *History) Stats() Stats {
	s := Stats{
		Transactions:  h.TotalTransactionsMade(),
		GrossEarnings: h.GrossEarnings(),
		AverageSpend:  h.AverageSpendPerVisit(),
	}
	if t, ok := h.HighestGrossingTransaction(); ok {
		s.HighestGrossing = &TransactionSummary{
			ID:       t.ID(),
			Customer: t.Customer().Name,
			Total:    t.Total(),
		}
	}
	if b, ok := h.MostPopularProduct(); ok {
		s.MostPopular = &b
	}
	for _, b := range product.Barcodes() {
		s.Products = append(s.Products, ProductStats{
			Barcode:         b,
			Sold:            h.TotalProductsSoldOf(b),
			GrossEarnings:   h.GrossEarningsOf(b),
			AverageDiscount: h.AverageProductDiscount(b),
		})
	}
	return s
}

// Encode writes s as a JSON object. Amounts are in cents.
func (s Stats) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("transactions", func(e *jx.Encoder) {
			e.Int(s.Transactions)
		})
		e.Field("gross_earnings", func(e *jx.Encoder) {
			e.Int(s.GrossEarnings)
		})
		e.Field("average_spend", func(e *jx.Encoder) {
			e.Float64(s.AverageSpend)
		})
		e.Field("highest_grossing", func(e *jx.Encoder) {
			if s.HighestGrossing == nil {
				e.Null()
				return
			}
			e.Obj(func(e *jx.Encoder) {
				e.Field("id", func(e *jx.Encoder) {
					e.Str(s.HighestGrossing.ID)
				})
				e.Field("customer", func(e *jx.Encoder) {
					e.Str(s.HighestGrossing.Customer)
				})
				e.Field("total", func(e *jx.Encoder) {
					e.Int(s.HighestGrossing.Total)
				})
			})
		})
		e.Field("most_popular", func(e *jx.Encoder) {
			if s.MostPopular == nil {
				e.Null()
				return
			}
			e.Str(s.MostPopular.String())
		})
		e.Field("products", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, p := range s.Products {
					p.Encode(e)
				}
			})
		})
	})
}

// Encode writes p as a JSON object.
func (p ProductStats) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("barcode", func(e *jx.Encoder) {
			e.Str(p.Barcode.String())
		})
		e.Field("sold", func(e *jx.Encoder) {
			e.Int(p.Sold)
		})
		e.Field("gross_earnings", func(e *jx.Encoder) {
			e.Int(p.GrossEarnings)
		})
		e.Field("average_discount", func(e *jx.Encoder) {
			e.Float64(p.AverageDiscount)
		})
	})
}

// MarshalJSON implements json.Marshaler.
func (s Stats) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	s.Encode(&e)
	return e.Bytes(), nil
}
