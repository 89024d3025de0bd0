package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Formatter renders money, quantities and dates for display.
type Formatter struct {
	Symbol       string
	Precision    int32
	QtyPrecision int32
	ThousandsSep string
	DecimalSep   string
	DateLayout   string
}

// DefaultFormatter returns the formatter used when no configuration is supplied
func DefaultFormatter() Formatter {
	return Formatter{
		Symbol:       "",
		Precision:    2,
		QtyPrecision: 2,
		ThousandsSep: ",",
		DecimalSep:   ".",
		DateLayout:   "02-01-2006",
	}
}

// Money formats an amount with grouping and fixed precision, without a symbol.
// 1234.5 -> "1,234.50"
func (f Formatter) Money(d decimal.Decimal) string {
	return f.group(d, f.Precision)
}

// Currency formats an amount prefixed with the configured symbol.
func (f Formatter) Currency(d decimal.Decimal) string {
	if f.Symbol == "" {
		return f.Money(d)
	}
	if d.IsNegative() {
		return "-" + f.Symbol + " " + f.Money(d.Abs())
	}
	return f.Symbol + " " + f.Money(d)
}

// Float formats a quantity using the quantity precision.
func (f Formatter) Float(d decimal.Decimal) string {
	return f.group(d, f.QtyPrecision)
}

// Date formats a calendar date. Zero dates render as an empty string.
func (f Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	layout := f.DateLayout
	if layout == "" {
		layout = "2006-01-02"
	}
	return t.Format(layout)
}

func (f Formatter) group(d decimal.Decimal, precision int32) string {
	if precision < 0 {
		precision = 0
	}
	fixed := d.StringFixed(precision)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative && !isZeroDigits(intPart+fracPart) {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.ThousandsSep)
		}
		b.WriteRune(r)
	}
	if precision > 0 {
		sep := f.DecimalSep
		if sep == "" {
			sep = "."
		}
		b.WriteString(sep)
		b.WriteString(fracPart)
	}
	return b.String()
}

func isZeroDigits(s string) bool {
	for _, r := range s {
		if r != '0' {
			return false
		}
	}
	return true
}
