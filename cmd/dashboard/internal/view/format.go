package view

import (
	"context"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const apiTimeout = 10 * time.Second

var (
	bob          = currency.MustParseISO("BOB")
	moneyPrinter = message.NewPrinter(language.LatinAmericanSpanish)
)

// FormatAmount renders a monetary value for display. Formatting happens at
// render time only; transported values stay plain decimal numbers.
func FormatAmount(v float64) string {
	return moneyPrinter.Sprint(currency.Symbol(bob.Amount(v)))
}

// ApiCtx returns a context with a standard timeout for API calls.
func ApiCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), apiTimeout)
}
