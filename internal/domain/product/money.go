package product

import "github.com/shopspring/decimal"

// FormatCents renders an amount of cents as dollars, e.g. 1320 -> "$13.20".
func FormatCents(cents int) string {
	return "$" + decimal.New(int64(cents), -2).StringFixed(2)
}

// FormatCentsFloat renders a fractional amount of cents as dollars rounded
// to the nearest cent.
func FormatCentsFloat(cents float64) string {
	return "$" + decimal.NewFromFloat(cents).Shift(-2).StringFixed(2)
}
