package product

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// ErrUnknownBarcode is returned when a product name does not match any barcode.
var ErrUnknownBarcode = errors.New("unknown product")

// ErrUnknownQuality is returned when a quality name does not match any grade.
var ErrUnknownQuality = errors.New("unknown quality")

// Barcode identifies a kind of product sold by the farm. The declaration
// order of the constants is the canonical listing order.
type Barcode int

const (
	Egg Barcode = iota
	Milk
	Jam
	Wool
)

type barcodeInfo struct {
	code  string
	name  string
	price int
}

var barcodes = [...]barcodeInfo{
	Egg:  {code: "EGG", name: "Egg", price: 50},
	Milk: {code: "MILK", name: "Milk", price: 440},
	Jam:  {code: "JAM", name: "Jam", price: 670},
	Wool: {code: "WOOL", name: "Wool", price: 2850},
}

// Barcodes returns every barcode in declaration order.
func Barcodes() []Barcode {
	return []Barcode{Egg, Milk, Jam, Wool}
}

// Valid reports whether b is one of the declared barcodes.
func (b Barcode) Valid() bool {
	return b >= Egg && int(b) < len(barcodes)
}

// BasePrice returns the undiscounted unit price in cents.
func (b Barcode) BasePrice() int {
	if !b.Valid() {
		return 0
	}
	return barcodes[b].price
}

// DisplayName returns the human readable product name.
func (b Barcode) DisplayName() string {
	if !b.Valid() {
		return ""
	}
	return barcodes[b].name
}

func (b Barcode) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Barcode(%d)", int(b))
	}
	return barcodes[b].code
}

// ParseBarcode resolves a case-insensitive product name to its barcode.
func ParseBarcode(s string) (Barcode, error) {
	s = strings.TrimSpace(s)
	for _, b := range Barcodes() {
		if strings.EqualFold(s, barcodes[b].code) {
			return b, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownBarcode, "%q", s)
}

// Quality grades a physical unit of stock. Grades are ordered; a higher
// grade is removed from stock first.
type Quality int

const (
	Regular Quality = iota
	Silver
	Gold
	Iridium
)

var qualityNames = [...]string{
	Regular: "REGULAR",
	Silver:  "SILVER",
	Gold:    "GOLD",
	Iridium: "IRIDIUM",
}

// Qualities returns every grade from lowest to highest.
func Qualities() []Quality {
	return []Quality{Regular, Silver, Gold, Iridium}
}

// Valid reports whether q is one of the declared grades.
func (q Quality) Valid() bool {
	return q >= Regular && int(q) < len(qualityNames)
}

func (q Quality) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quality(%d)", int(q))
	}
	return qualityNames[q]
}

// ParseQuality resolves a case-insensitive grade name.
func ParseQuality(s string) (Quality, error) {
	s = strings.TrimSpace(s)
	for _, q := range Qualities() {
		if strings.EqualFold(s, qualityNames[q]) {
			return q, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownQuality, "%q", s)
}

// Product is a single unit of stock. Products are plain values and compare
// equal when barcode and quality match.
type Product struct {
	Barcode Barcode
	Quality Quality
}

// New returns a product of the given kind and grade.
func New(barcode Barcode, quality Quality) Product {
	return Product{Barcode: barcode, Quality: quality}
}

// BasePrice returns the unit price in cents. Quality does not change price.
func (p Product) BasePrice() int {
	return p.Barcode.BasePrice()
}

// DisplayName returns the name of the product kind.
func (p Product) DisplayName() string {
	return p.Barcode.DisplayName()
}

func (p Product) String() string {
	return fmt.Sprintf("%s: %dc %s", p.DisplayName(), p.BasePrice(), p.Quality)
}
