// Package money formats and sums ledger amounts.
//
// Amounts stay float64 in the domain; decimal is used only where rounding
// would otherwise leak binary noise into totals and printed figures.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// Currency is the ISO code printed on invoices.
	Currency = "MXN"
	symbol   = "$"
)

var printer = message.NewPrinter(language.MustParse("es-MX"))

// Format renders an amount the es-MX way: "$2,500.00", "-$12.50".
func Format(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + symbol + printer.Sprintf("%.2f", d.InexactFloat64())
}

// Sum adds amounts without accumulating float error.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.Round(2).InexactFloat64()
}
