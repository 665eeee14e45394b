// Package format provides Norwegian-locale display formatting for amounts
// and dates. Values are formatted per request and never stored.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// language.Norwegian is the macrolanguage tag "no", for which x/text has no
// CLDR number data and silently falls back to English separators. The Bokmål
// tag "nb" carries the Norwegian formatting data this package documents.
var printer = message.NewPrinter(language.MustParse("nb"))

// Currency renders an amount as a Norwegian NOK string, e.g. "kr 6 649,90".
// Group and kr separators are non-breaking spaces, as the locale prescribes.
func Currency(amount float64) string {
	return printer.Sprintf("kr %v",
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Date renders a timestamp as a Norwegian short date, e.g. "28.9.2025".
func Date(t time.Time) string {
	return t.Format("2.1.2006")
}
