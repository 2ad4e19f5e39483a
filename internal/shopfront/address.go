package shopfront

import (
	"context"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/xenking/farm-shop/internal/domain/customer"
	"github.com/xenking/farm-shop/internal/domain/farmerr"
)

func (s *ShopFront) addressMode() mode {
	return mode{
		name:     "address",
		commands: "add, list",
		handlers: map[string]handlerFunc{
			"add":  s.addCustomer,
			"list": s.listCustomers,
		},
	}
}

func (s *ShopFront) addCustomer(ctx context.Context, _ []string) error {
	name, phone, ok, err := s.promptCustomer(ctx)
	if err != nil || !ok {
		return err
	}
	address, err := s.readLine(ctx, "Enter customer address: ")
	if err != nil {
		return err
	}

	err = s.farm.SaveCustomer(ctx, customer.New(name, phone, address))
	switch {
	case errors.Is(err, farmerr.ErrDuplicateCustomer):
		s.println(msgDuplicateCustomer)
	case err != nil:
		s.printf("Failed to add customer: %s\n", err)
	default:
		s.println(msgCustomerAdded)
	}
	return nil
}

// promptCustomer asks for a name and phone number. ok is false when the
// phone number is not a number.
func (s *ShopFront) promptCustomer(ctx context.Context) (name string, phone int, ok bool, err error) {
	name, err = s.readLine(ctx, "Enter customer name: ")
	if err != nil {
		return "", 0, false, err
	}
	raw, err := s.readLine(ctx, "Enter customer phone number: ")
	if err != nil {
		return "", 0, false, err
	}
	phone, convErr := strconv.Atoi(raw)
	if convErr != nil || phone < 0 {
		s.println(msgInvalidPhone)
		return "", 0, false, nil
	}
	return name, phone, true, nil
}

func (s *ShopFront) listCustomers(ctx context.Context, _ []string) error {
	customers := s.farm.AllCustomers()
	if len(customers) == 0 {
		s.println(msgAddressBookEmpty)
		return nil
	}
	for _, c := range customers {
		s.println(c.String())
	}
	return nil
}
