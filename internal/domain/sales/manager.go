// Package sales tracks the ongoing transaction and the record of completed
// ones.
package sales

import (
	"github.com/go-faster/errors"

	"github.com/xenking/farm-shop/internal/domain/farmerr"
	"github.com/xenking/farm-shop/internal/domain/product"
	"github.com/xenking/farm-shop/internal/domain/transaction"
)

// Manager holds at most one ongoing transaction.
type Manager struct {
	ongoing transaction.Transaction
}

// NewManager returns a manager with no ongoing transaction.
func NewManager() *Manager {
	return &Manager{}
}

// HasOngoingTransaction reports whether a transaction is bound.
func (m *Manager) HasOngoingTransaction() bool {
	return m.ongoing != nil
}

// Ongoing returns the bound transaction.
func (m *Manager) Ongoing() (transaction.Transaction, bool) {
	return m.ongoing, m.ongoing != nil
}

// SetOngoingTransaction binds t. It fails while another transaction is bound.
func (m *Manager) SetOngoingTransaction(t transaction.Transaction) error {
	if t == nil {
		return errors.Wrap(farmerr.ErrInvalidArgument, "nil transaction")
	}
	if m.ongoing != nil {
		return errors.Wrap(farmerr.ErrFailedTransaction, "a transaction is already in progress")
	}
	m.ongoing = t
	return nil
}

// RegisterPendingPurchase adds p to the ongoing customer's cart.
func (m *Manager) RegisterPendingPurchase(p product.Product) error {
	if m.ongoing == nil {
		return errors.Wrap(farmerr.ErrFailedTransaction, "no ongoing transaction")
	}
	if m.ongoing.IsFinalised() {
		return errors.Wrap(farmerr.ErrFailedTransaction, "ongoing transaction is already finalised")
	}
	m.ongoing.Customer().Cart().Add(p)
	return nil
}

// CloseCurrentTransaction unbinds, finalises and returns the ongoing
// transaction.
func (m *Manager) CloseCurrentTransaction() (transaction.Transaction, error) {
	if m.ongoing == nil {
		return nil, errors.Wrap(farmerr.ErrFailedTransaction, "no ongoing transaction")
	}
	t := m.ongoing
	m.ongoing = nil
	t.Finalise()
	return t, nil
}
