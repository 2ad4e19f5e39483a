package shopfront

import (
	"context"
	"strconv"

	"github.com/xenking/farm-shop/internal/domain/product"
)

func (s *ShopFront) inventoryMode() mode {
	return mode{
		name:     "inventory",
		commands: "add <product> [-o <quality>] [<qty>], list",
		handlers: map[string]handlerFunc{
			"add":  s.stockProduct,
			"list": s.listStock,
		},
	}
}

type stockRequest struct {
	barcode  product.Barcode
	quality  product.Quality
	quantity int
	bulk     bool
}

// parseStockArgs parses "<product> [-o <quality>] [<qty>]".
func (s *ShopFront) parseStockArgs(args []string) (stockRequest, bool) {
	if len(args) == 0 {
		s.println(msgIncorrectArguments)
		return stockRequest{}, false
	}
	b, err := product.ParseBarcode(args[0])
	if err != nil {
		s.println(msgInvalidProduct)
		return stockRequest{}, false
	}
	req := stockRequest{barcode: b, quality: product.Regular, quantity: 1}

	rest := args[1:]
	for len(rest) > 0 {
		switch {
		case rest[0] == "-o" && len(rest) > 1:
			q, err := product.ParseQuality(rest[1])
			if err != nil {
				s.println(msgInvalidQuality)
				return stockRequest{}, false
			}
			req.quality = q
			rest = rest[2:]
		case len(rest) == 1:
			n, err := strconv.Atoi(rest[0])
			if err != nil {
				s.println(msgInvalidQuantity)
				return stockRequest{}, false
			}
			req.quantity, req.bulk = n, true
			rest = nil
		default:
			s.println(msgIncorrectArguments)
			return stockRequest{}, false
		}
	}
	return req, true
}

func (s *ShopFront) stockProduct(ctx context.Context, args []string) error {
	req, ok := s.parseStockArgs(args)
	if !ok {
		return nil
	}
	if !req.bulk {
		s.farm.StockProduct(ctx, req.barcode, req.quality)
		s.printf("Added 1 %s (%s) to the inventory.\n", req.barcode.DisplayName(), req.quality)
		return nil
	}
	if err := s.farm.StockProducts(ctx, req.barcode, req.quality, req.quantity); err != nil {
		s.printf("Failed to add product: %s\n", err)
		return nil
	}
	s.printf("Added %d %s (%s) to the inventory.\n", req.quantity, req.barcode.DisplayName(), req.quality)
	return nil
}

func (s *ShopFront) listStock(ctx context.Context, _ []string) error {
	stock := s.farm.AllStock()
	if len(stock) == 0 {
		s.println(msgInventoryEmpty)
		return nil
	}
	for _, p := range stock {
		s.println(p.String())
	}
	return nil
}
