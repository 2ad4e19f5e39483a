package transaction

import (
	"github.com/xenking/farm-shop/internal/domain/customer"
	"github.com/xenking/farm-shop/internal/domain/discount"
)

// Kind selects which transaction type to start.
type Kind int

const (
	KindPlain Kind = iota
	KindCategorised
	KindSpecialSale
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindCategorised:
		return "categorised"
	case KindSpecialSale:
		return "special sale"
	default:
		return "unknown"
	}
}

// NewOfKind starts a transaction of kind k for c. The discount table is only
// used by special sales.
func NewOfKind(k Kind, c *customer.Customer, discounts discount.Table, opts ...Option) Transaction {
	switch k {
	case KindCategorised:
		return NewCategorised(c, opts...)
	case KindSpecialSale:
		return NewSpecialSale(c, discounts, opts...)
	default:
		return New(c, opts...)
	}
}
