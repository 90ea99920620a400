package model

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatUSD renders a whole-dollar amount with thousands separators, e.g. $250,000
func FormatUSD(d decimal.Decimal) string {
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("$%.0f", d.Round(0).InexactFloat64())
}
