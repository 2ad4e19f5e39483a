// Package farmerr defines the error kinds shared by the farm shop domain.
//
// Every failing domain operation returns an error that matches exactly one
// of the sentinels below via errors.Is. Context is added with errors.Wrap.
package farmerr

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrDuplicateCustomer is returned when saving a customer that is already
	// present in the address book.
	ErrDuplicateCustomer = errors.New("duplicate customer")
	// ErrCustomerNotFound is returned when no customer matches a lookup.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInvalidStockRequest is returned for stock operations the inventory
	// cannot honour.
	ErrInvalidStockRequest = errors.New("invalid stock request")
	// ErrFailedTransaction is returned when a sale cannot proceed, e.g. no
	// transaction is ongoing or one is already in progress.
	ErrFailedTransaction = errors.New("failed transaction")
	// ErrInvalidArgument is returned for violated local preconditions.
	ErrInvalidArgument = errors.New("invalid argument")
)

// QuantityError reports a quantity the operation does not accept. Kind is
// the sentinel the error matches.
type QuantityError struct {
	Quantity int
	Reason   string
	Kind     error
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("%s: quantity %d: %s", e.Kind, e.Quantity, e.Reason)
}

// Unwrap returns the error kind.
func (e *QuantityError) Unwrap() error {
	return e.Kind
}

// NonPositiveQuantity returns a QuantityError for quantity < 1 of the given kind.
func NonPositiveQuantity(quantity int, kind error) error {
	return &QuantityError{Quantity: quantity, Reason: "must be at least 1", Kind: kind}
}
