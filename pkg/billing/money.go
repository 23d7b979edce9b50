package billing

import (
	"strconv"
	"strings"
	"time"
)

// Currency label used on every invoice. The dealership bills in Jamaican
// dollars with US-style digit grouping.
const CurrencyLabel = "JMD"

// FormatJMD formats an amount in cents as a currency string,
// e.g. 150000000 -> "JMD $1,500,000.00". Every render path (text and PDF)
// goes through this function so the two always agree byte for byte.
func FormatJMD(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	var b strings.Builder
	b.WriteString(CurrencyLabel)
	b.WriteString(" ")
	if negative {
		b.WriteString("-")
	}
	b.WriteString("$")
	b.WriteString(groupThousands(whole))
	b.WriteString(".")
	if frac < 10 {
		b.WriteString("0")
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}

// groupThousands inserts commas into a non-negative integer: 1500000 -> "1,500,000".
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatIssueDate formats an invoice issue date the way it appears on
// documents, e.g. "January 2, 2006".
func FormatIssueDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
