package shopfront

import (
	"context"

	"github.com/go-faster/jx"

	"github.com/xenking/farm-shop/internal/domain/product"
)

func (s *ShopFront) historyMode() mode {
	return mode{
		name:     "history",
		commands: "stats [-json], last, grossing, popular",
		handlers: map[string]handlerFunc{
			"stats":    s.showStats,
			"last":     s.showLast,
			"grossing": s.showHighestGrossing,
			"popular":  s.showMostPopular,
		},
	}
}

func (s *ShopFront) showStats(ctx context.Context, args []string) error {
	stats := s.farm.History().Stats()

	if len(args) == 1 && args[0] == "-json" {
		e := jx.GetEncoder()
		defer jx.PutEncoder(e)
		e.SetIdent(2)
		stats.Encode(e)
		s.println(e.String())
		return nil
	}
	if len(args) != 0 {
		s.println(msgIncorrectArguments)
		return nil
	}

	s.printf("Transactions made: %d\n", stats.Transactions)
	s.printf("Gross earnings: %s\n", product.FormatCents(stats.GrossEarnings))
	s.printf("Average spend per visit: %s\n", product.FormatCentsFloat(stats.AverageSpend))
	for _, p := range stats.Products {
		s.printf("%s: %d sold, average discount %s\n",
			p.Barcode.DisplayName(), p.Sold, product.FormatCentsFloat(p.AverageDiscount))
	}
	return nil
}

func (s *ShopFront) showLast(ctx context.Context, _ []string) error {
	t, ok := s.farm.History().LastTransaction()
	if !ok {
		s.println(msgNoTransactions)
		return nil
	}
	s.print(t.Receipt())
	return nil
}

func (s *ShopFront) showHighestGrossing(ctx context.Context, _ []string) error {
	t, ok := s.farm.History().HighestGrossingTransaction()
	if !ok {
		s.println(msgNoTransactions)
		return nil
	}
	s.print(t.Receipt())
	return nil
}

func (s *ShopFront) showMostPopular(ctx context.Context, _ []string) error {
	b, ok := s.farm.History().MostPopularProduct()
	if !ok {
		s.println(msgNothingSold)
		return nil
	}
	s.printf("Most popular product: %s\n", b.DisplayName())
	return nil
}
