package customer

import (
	"fmt"

	"github.com/xenking/farm-shop/internal/domain/cart"
)

// Customer is a shop customer. Each customer owns exactly one cart.
type Customer struct {
	Name        string
	PhoneNumber int
	Address     string

	cart *cart.Cart
}

// New returns a customer with an empty cart.
func New(name string, phoneNumber int, address string) *Customer {
	return &Customer{
		Name:        name,
		PhoneNumber: phoneNumber,
		Address:     address,
		cart:        cart.New(),
	}
}

// Cart returns the customer's cart.
func (c *Customer) Cart() *cart.Cart {
	if c.cart == nil {
		c.cart = cart.New()
	}
	return c.cart
}

// Equal reports whether both customers have the same name, phone number and
// address. Carts are not compared.
func (c *Customer) Equal(other *Customer) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Name == other.Name &&
		c.PhoneNumber == other.PhoneNumber &&
		c.Address == other.Address
}

func (c *Customer) String() string {
	return fmt.Sprintf("Name: %s | Phone Number: %d | Address: %s", c.Name, c.PhoneNumber, c.Address)
}
