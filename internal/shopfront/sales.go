package shopfront

import (
	"context"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/xenking/farm-shop/internal/domain/farmerr"
	"github.com/xenking/farm-shop/internal/domain/product"
	"github.com/xenking/farm-shop/internal/domain/transaction"
)

func (s *ShopFront) salesMode() mode {
	return mode{
		name:     "sales",
		commands: "start [-s|-specialsale|-c|-categorised], add <product> [<qty>], checkout",
		handlers: map[string]handlerFunc{
			"start":    s.startTransaction,
			"add":      s.addToCart,
			"checkout": s.checkout,
		},
	}
}

func parseKind(args []string) (transaction.Kind, bool) {
	if len(args) == 0 {
		return transaction.KindPlain, true
	}
	if len(args) > 1 {
		return 0, false
	}
	switch args[0] {
	case "-s", "-specialsale":
		return transaction.KindSpecialSale, true
	case "-c", "-categorised":
		return transaction.KindCategorised, true
	default:
		return 0, false
	}
}

func (s *ShopFront) startTransaction(ctx context.Context, args []string) error {
	kind, ok := parseKind(args)
	if !ok {
		s.println(msgIncorrectArguments)
		return nil
	}

	name, phone, ok, err := s.promptCustomer(ctx)
	if err != nil || !ok {
		return err
	}
	c, err := s.farm.Customer(name, phone)
	if err != nil {
		if errors.Is(err, farmerr.ErrCustomerNotFound) {
			s.println(msgCustomerNotFound)
			return nil
		}
		s.printf("Failed to start transaction: %s\n", err)
		return nil
	}

	if err := s.farm.StartTransaction(ctx, s.farm.NewTransaction(kind, c)); err != nil {
		s.printf("Failed to start transaction: %s\n", err)
		return nil
	}
	s.println(msgTransactionStarted)
	return nil
}

func (s *ShopFront) addToCart(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		s.println(msgIncorrectArguments)
		return nil
	}
	b, err := product.ParseBarcode(args[0])
	if err != nil {
		s.println(msgInvalidProduct)
		return nil
	}

	var added int
	if len(args) == 2 {
		quantity, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			s.println(msgInvalidQuantity)
			return nil
		}
		added, err = s.farm.AddToCartQuantity(ctx, b, quantity)
	} else {
		added, err = s.farm.AddToCart(ctx, b)
	}
	if err != nil {
		s.printf("Failed to add to cart: %s\n", err)
		return nil
	}
	if added == 0 {
		s.println(msgOutOfStock)
		return nil
	}
	s.printf("Added %d %s to the cart.\n", added, b.DisplayName())
	return nil
}

func (s *ShopFront) checkout(ctx context.Context, _ []string) error {
	recorded, err := s.farm.Checkout(ctx)
	if err != nil {
		s.printf("Checkout failed: %s\n", err)
		return nil
	}
	if !recorded {
		s.println(msgEmptyCheckout)
		return nil
	}
	s.print(s.farm.LastReceipt())
	return nil
}
