package customer

import (
	"slices"

	"github.com/go-faster/errors"

	"github.com/xenking/farm-shop/internal/domain/farmerr"
)

// AddressBook stores the farm's customer records in insertion order.
type AddressBook struct {
	customers []*Customer
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// Add stores a customer. It returns farmerr.ErrDuplicateCustomer if an equal
// customer is already present.
func (b *AddressBook) Add(c *Customer) error {
	if b.Contains(c) {
		return errors.Wrapf(farmerr.ErrDuplicateCustomer, "%s", c.Name)
	}
	b.customers = append(b.customers, c)
	return nil
}

// Contains reports whether an equal customer is stored.
func (b *AddressBook) Contains(c *Customer) bool {
	return slices.ContainsFunc(b.customers, c.Equal)
}

// All returns a copy of all records.
func (b *AddressBook) All() []*Customer {
	return slices.Clone(b.customers)
}

// Find returns the first customer with the given name and phone number.
func (b *AddressBook) Find(name string, phoneNumber int) (*Customer, error) {
	for _, c := range b.customers {
		if c.Name == name && c.PhoneNumber == phoneNumber {
			return c, nil
		}
	}
	return nil, errors.Wrapf(farmerr.ErrCustomerNotFound, "%s (%d)", name, phoneNumber)
}
