// Package shopfront implements the interactive text menu of the farm shop.
//
// The menu has four modes (inventory, address, sales, history), each with
// its own commands. Every line read is one command; farm errors are printed
// as one-line messages and never end the session.
package shopfront

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/farm-shop/internal/domain/customer"
	"github.com/xenking/farm-shop/internal/domain/product"
	"github.com/xenking/farm-shop/internal/domain/sales"
	"github.com/xenking/farm-shop/internal/domain/transaction"
)

// Farm is the subset of farm operations the shop front drives.
type Farm interface {
	AllCustomers() []*customer.Customer
	AllStock() []product.Product
	History() *sales.History

	SaveCustomer(ctx context.Context, c *customer.Customer) error
	Customer(name string, phone int) (*customer.Customer, error)
	StockProduct(ctx context.Context, b product.Barcode, q product.Quality)
	StockProducts(ctx context.Context, b product.Barcode, q product.Quality, quantity int) error

	NewTransaction(k transaction.Kind, c *customer.Customer) transaction.Transaction
	StartTransaction(ctx context.Context, t transaction.Transaction) error
	AddToCart(ctx context.Context, b product.Barcode) (int, error)
	AddToCartQuantity(ctx context.Context, b product.Barcode, quantity int) (int, error)
	Checkout(ctx context.Context) (bool, error)
	LastReceipt() string
}

// ShopFront reads commands from in and writes responses to out.
type ShopFront struct {
	farm Farm
	in   *bufio.Scanner
	out  io.Writer
}

// New creates a ShopFront over the given farm and streams.
func New(farm Farm, in io.Reader, out io.Writer) *ShopFront {
	return &ShopFront{
		farm: farm,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

type handlerFunc func(ctx context.Context, args []string) error

type mode struct {
	name     string
	commands string
	handlers map[string]handlerFunc
}

// Run serves the top-level menu until the user quits, input ends, or ctx is
// cancelled.
func (s *ShopFront) Run(ctx context.Context) error {
	s.println("Welcome to the farm shop!")
	defer s.println("Thank you for using the farm shop!")

	modes := map[string]mode{
		"inventory": s.inventoryMode(),
		"address":   s.addressMode(),
		"sales":     s.salesMode(),
		"history":   s.historyMode(),
	}

	for {
		fields, err := s.prompt(ctx, "Select a mode (inventory, address, sales, history, q): ")
		if err != nil {
			return ignoreEOF(err)
		}
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "q" {
			return nil
		}
		m, ok := modes[fields[0]]
		if !ok {
			s.println(msgIncorrectArguments)
			continue
		}
		if err := s.runMode(zctx.With(ctx, zap.String("mode", m.name)), m); err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *ShopFront) runMode(ctx context.Context, m mode) error {
	lg := zctx.From(ctx)
	for {
		fields, err := s.prompt(ctx, fmt.Sprintf("[%s] Enter a command (%s, q): ", m.name, m.commands))
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "q" {
			return nil
		}
		h, ok := m.handlers[fields[0]]
		if !ok {
			s.println(msgIncorrectArguments)
			continue
		}
		lg.Debug("Command", zap.Strings("args", fields))
		if err := h(ctx, fields[1:]); err != nil {
			return err
		}
	}
}

// prompt writes msg and returns the next input line split into fields.
func (s *ShopFront) prompt(ctx context.Context, msg string) ([]string, error) {
	line, err := s.readLine(ctx, msg)
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}

func (s *ShopFront) readLine(ctx context.Context, msg string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.print(msg)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *ShopFront) print(a ...any) {
	_, _ = fmt.Fprint(s.out, a...)
}

func (s *ShopFront) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *ShopFront) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
