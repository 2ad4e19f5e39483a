package transaction

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xenking/farm-shop/internal/domain/product"
)

const receiptWidth = 48

// ActiveNotice is printed instead of a receipt while a transaction is open.
const ActiveNotice = "This transaction is still active."

// Banner is the shop identity printed at the top of every receipt.
type Banner struct {
	Name    string
	Address string
}

// DefaultBanner is used when no banner option is given.
var DefaultBanner = Banner{
	Name:    "The Farm Shop",
	Address: "1 Paddock Lane, Greenfield",
}

type receiptRow struct {
	barcode  product.Barcode
	quantity int
	subtotal int
	discount int
}

func activeReceipt(b Banner) string {
	var sb strings.Builder
	writeHeader(&sb, b)
	writeLine(&sb, center(ActiveNotice))
	writeLine(&sb, rule('='))
	return sb.String()
}

func renderReceipt(b Banner, rows []receiptRow, total int, customerName string, saved int) string {
	var sb strings.Builder
	writeHeader(&sb, b)
	writeLine(&sb, column("Item", "Qty", "Price (ea.)", "Subtotal"))
	writeLine(&sb, rule('-'))
	for _, row := range rows {
		writeLine(&sb, column(
			strings.ToLower(row.barcode.DisplayName()),
			fmt.Sprint(row.quantity),
			product.FormatCents(row.barcode.BasePrice()),
			product.FormatCents(row.subtotal),
		))
		if row.discount > 0 {
			writeLine(&sb, fmt.Sprintf("Discount applied! %d%% off %s",
				row.discount, strings.ToLower(row.barcode.DisplayName())))
		}
	}
	writeLine(&sb, rule('-'))
	writeLine(&sb, fmt.Sprintf("%-24s%s", "Total:", product.FormatCents(total)))
	if saved > 0 {
		writeLine(&sb, center(fmt.Sprintf("***** TOTAL SAVINGS: %s *****", product.FormatCents(saved))))
	}
	writeLine(&sb, rule('-'))
	writeLine(&sb, center(fmt.Sprintf("Thank you for shopping with us, %s!", customerName)))
	writeLine(&sb, rule('='))
	return sb.String()
}

func writeHeader(sb *strings.Builder, b Banner) {
	writeLine(sb, rule('='))
	writeLine(sb, center(b.Name))
	if b.Address != "" {
		writeLine(sb, center(b.Address))
	}
	writeLine(sb, rule('='))
}

func writeLine(sb *strings.Builder, s string) {
	sb.WriteString(s)
	sb.WriteByte('\n')
}

func rule(c byte) string {
	return strings.Repeat(string(c), receiptWidth)
}

func column(item, qty, price, subtotal string) string {
	return fmt.Sprintf("%-11s%-10s%-17s%s", item, qty, price, subtotal)
}

func center(s string) string {
	pad := (receiptWidth - utf8.RuneCountInString(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
