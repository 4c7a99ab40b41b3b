package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders rupee amounts with Indian digit grouping. Unit prices
// carry no forced fraction digits; summary amounts always show two.
type Formatter struct {
	p      *message.Printer
	symbol string
}

func NewFormatter() *Formatter {
	return &Formatter{
		p:      message.NewPrinter(language.MustParse("en-IN")),
		symbol: "₹",
	}
}

// Price formats a whole-rupee amount, e.g. ₹1,00,000.
func (f *Formatter) Price(v int) string {
	return f.symbol + f.p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// Amount formats a derived amount with exactly two fraction digits,
// e.g. ₹929.97.
func (f *Formatter) Amount(v float64) string {
	return f.symbol + f.p.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
