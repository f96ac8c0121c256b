package chart

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// All user-visible numbers and dates use a fixed en-US locale.
var printer = message.NewPrinter(language.AmericanEnglish)

// FormatValue renders v with thousands separators and up to three
// fraction digits, e.g. 18064.7 -> "18,064.7".
func FormatValue(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatTick renders a y-axis label, e.g. 1234 -> "$1,234B".
func FormatTick(v float64) string {
	return "$" + FormatValue(v) + "B"
}

// FormatDate renders the long tooltip date, e.g. "January 1, 1947".
// Dates are UTC calendar dates, independent of the host time zone.
func FormatDate(t time.Time) string {
	return t.UTC().Format("January 2, 2006")
}

// FormatYear renders an x-axis label.
func FormatYear(t time.Time) string {
	return t.UTC().Format("2006")
}
