// Package billing holds the invoice money logic: price coercion, the GCT
// totals calculation and currency formatting. Everything here is pure and
// free of I/O so it can be called repeatedly while an invoice is being edited.
package billing

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// GCTRate is the General Consumption Tax rate applied to every sale.
const GCTRate = "0.15"

// GCTPercent is the human-facing tax rate label.
const GCTPercent = "15%"

var gctRate = decimal.RequireFromString(GCTRate)

// Price is a vehicle sale price in cents. It unmarshals from either a JSON
// number or a string; an empty, non-numeric or negative value coerces to
// zero rather than failing, matching how the invoice form treats a blank
// price field. A Price is therefore never negative.
type Price int64

// UnmarshalJSON accepts numbers ("1500000", 1500000.50) and strings,
// including strings with currency grouping ("1,500,000"). Anything that
// does not parse becomes zero.
func (p *Price) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		*p = 0
		return nil
	}

	switch v := raw.(type) {
	case float64:
		*p = fromDecimal(decimal.NewFromFloat(v))
	case string:
		*p = ParsePrice(v)
	default:
		*p = 0
	}
	return nil
}

// MarshalJSON emits the price as a decimal number of dollars.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Decimal().InexactFloat64())
}

// Cents returns the price in cents.
func (p Price) Cents() int64 {
	return int64(p)
}

// Decimal returns the price in dollars as an exact decimal.
func (p Price) Decimal() decimal.Decimal {
	return decimal.New(int64(p), -2)
}

// ParsePrice coerces a free-text price into cents. Grouping commas and
// surrounding whitespace are tolerated; empty, unparseable or negative
// input is zero.
func ParsePrice(s string) Price {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return fromDecimal(d)
}

func fromDecimal(d decimal.Decimal) Price {
	if d.IsNegative() {
		return 0
	}
	return Price(d.Shift(2).Round(0).IntPart())
}

// Totals is the result of the invoice totals calculation, in cents.
type Totals struct {
	SubtotalCents int64
	GCTCents      int64
	TotalCents    int64
}

// ComputeTotals sums a sequence of prices and applies GCT.
//
// The subtotal is the exact sum of the prices. GCT is the subtotal times the
// fixed rate, rounded half-up to the cent. The total is subtotal plus GCT and
// is never rounded independently, so Subtotal + GCT == Total always holds.
// An empty sequence yields all zeroes.
func ComputeTotals(prices []Price) Totals {
	var subtotal int64
	for _, p := range prices {
		subtotal += p.Cents()
	}

	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative amounts handled here.
	gct := decimal.NewFromInt(subtotal).Mul(gctRate).Round(0).IntPart()

	return Totals{
		SubtotalCents: subtotal,
		GCTCents:      gct,
		TotalCents:    subtotal + gct,
	}
}

// VehiclePrices extracts the prices from any slice via an accessor, keeping
// ComputeTotals decoupled from the entity layer.
func VehiclePrices[T any](items []T, price func(T) Price) []Price {
	out := make([]Price, len(items))
	for i, item := range items {
		out[i] = price(item)
	}
	return out
}
