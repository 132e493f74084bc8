// Package currency renders amounts in the display currency.
//
// The reference deployment uses Indian Rupees, so amounts are grouped
// in the en-IN style (lakh/crore) with exactly two fraction digits.
// Callers keep all arithmetic in decimal.Decimal and only format at
// the boundary.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const symbol = "₹"

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount as a currency string, e.g. "₹1,50,000.00".
func Format(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return printer.Sprintf("%s%v", symbol, number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
