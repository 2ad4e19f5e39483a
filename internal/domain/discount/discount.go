// Package discount holds per-product percentage discounts used by special
// sale transactions.
package discount

import (
	"maps"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/farm-shop/internal/domain/product"
)

// ErrInvalidDiscount is returned for a malformed or out of range discount.
var ErrInvalidDiscount = errors.New("invalid discount")

// Table maps a product kind to a whole-number percentage between 0 and 100.
// Kinds missing from the table are not discounted.
type Table struct {
	percents map[product.Barcode]int
}

// NewTable validates and copies percents into a new table.
func NewTable(percents map[product.Barcode]int) (Table, error) {
	for b, pct := range percents {
		if err := validate(b, pct); err != nil {
			return Table{}, err
		}
	}
	return Table{percents: maps.Clone(percents)}, nil
}

// MustTable is like NewTable but panics on invalid input.
func MustTable(percents map[product.Barcode]int) Table {
	t, err := NewTable(percents)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse builds a table from "barcode:percent" entries such as "milk:10".
func Parse(entries []string) (Table, error) {
	percents := make(map[product.Barcode]int, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, value, ok := strings.Cut(entry, ":")
		if !ok {
			return Table{}, errors.Wrapf(ErrInvalidDiscount, "entry %q: want barcode:percent", entry)
		}
		b, err := product.ParseBarcode(name)
		if err != nil {
			return Table{}, errors.Wrapf(err, "entry %q", entry)
		}
		pct, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return Table{}, errors.Wrapf(ErrInvalidDiscount, "entry %q: %s", entry, err)
		}
		percents[b] = pct
	}
	return NewTable(percents)
}

func validate(b product.Barcode, pct int) error {
	if !b.Valid() {
		return errors.Wrapf(ErrInvalidDiscount, "unknown barcode %d", int(b))
	}
	if pct < 0 || pct > 100 {
		return errors.Wrapf(ErrInvalidDiscount, "%s: %d%% is outside 0-100", b, pct)
	}
	return nil
}

// Percent returns the discount percentage for b, or 0.
func (t Table) Percent(b product.Barcode) int {
	return t.percents[b]
}

// Percents returns a copy of the non-zero entries.
func (t Table) Percents() map[product.Barcode]int {
	out := make(map[product.Barcode]int, len(t.percents))
	for b, pct := range t.percents {
		if pct != 0 {
			out[b] = pct
		}
	}
	return out
}

// IsZero reports whether no kind is discounted.
func (t Table) IsZero() bool {
	return len(t.Percents()) == 0
}

// Apply returns the discounted subtotal for kind b. The discount is computed
// on the whole subtotal of the kind using integer division, so rounding is
// independent per kind.
func (t Table) Apply(b product.Barcode, subtotal int) int {
	return subtotal - Saved(subtotal, t.Percent(b))
}

// Saved returns the cents taken off subtotal by a pct discount.
func Saved(subtotal, pct int) int {
	return subtotal * pct / 100
}

func (t Table) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for _, b := range product.Barcodes() {
		pct, ok := t.percents[b]
		if !ok {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(b.String())
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(pct))
	}
	sb.WriteByte('}')
	return sb.String()
}
