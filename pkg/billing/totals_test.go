package billing

import (
	"encoding/json"
	"testing"
)

func TestComputeTotals_TwoVehicleSale(t *testing.T) {
	// 1,000,000.00 + 500,000.00 -> subtotal 1,500,000.00,
	// GCT 225,000.00, total 1,725,000.00
	prices := []Price{100000000, 50000000}

	got := ComputeTotals(prices)

	if got.SubtotalCents != 150000000 {
		t.Errorf("subtotal = %d, want 150000000", got.SubtotalCents)
	}
	if got.GCTCents != 22500000 {
		t.Errorf("gct = %d, want 22500000", got.GCTCents)
	}
	if got.TotalCents != 172500000 {
		t.Errorf("total = %d, want 172500000", got.TotalCents)
	}
}

func TestComputeTotals_Empty(t *testing.T) {
	got := ComputeTotals(nil)
	if got.SubtotalCents != 0 || got.GCTCents != 0 || got.TotalCents != 0 {
		t.Errorf("empty sequence should yield zero totals, got %+v", got)
	}
}

func TestComputeTotals_TaxRoundsHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		prices   []Price
		wantGCT  int64
		wantHalf string
	}{
		// 10 cents * 0.15 = 1.5 cents -> rounds up to 2
		{name: "half rounds up", prices: []Price{10}, wantGCT: 2},
		// 30 cents * 0.15 = 4.5 cents -> rounds up to 5
		{name: "half rounds up again", prices: []Price{30}, wantGCT: 5},
		// 9 cents * 0.15 = 1.35 cents -> rounds down to 1
		{name: "below half rounds down", prices: []Price{9}, wantGCT: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.prices)
			if got.GCTCents != tt.wantGCT {
				t.Errorf("gct = %d, want %d", got.GCTCents, tt.wantGCT)
			}
		})
	}
}

func TestComputeTotals_SubtotalPlusTaxEqualsTotal(t *testing.T) {
	// Property check across a spread of awkward amounts: the total must
	// always equal subtotal + GCT exactly, with no independent rounding.
	sequences := [][]Price{
		{1},
		{1, 1, 1},
		{99, 1},
		{33333, 66667},
		{12345678, 87654321, 11111111},
		{100000000, 50000000},
		{7, 13, 101, 9999999},
	}

	for _, prices := range sequences {
		got := ComputeTotals(prices)
		if got.SubtotalCents+got.GCTCents != got.TotalCents {
			t.Errorf("prices %v: subtotal %d + gct %d != total %d",
				prices, got.SubtotalCents, got.GCTCents, got.TotalCents)
		}
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	prices := []Price{12345, 67890, 11111}

	first := ComputeTotals(prices)
	second := ComputeTotals(prices)

	if first != second {
		t.Errorf("repeated runs disagree: %+v vs %+v", first, second)
	}
}

func TestComputeTotals_NegativePriceContributesNothing(t *testing.T) {
	// A negative submission coerces to zero before it reaches the
	// calculator, so the remaining vehicle sets the totals alone.
	var bad Price
	if err := json.Unmarshal([]byte(`-1000000`), &bad); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := ComputeTotals([]Price{bad, 50000000})

	if got.SubtotalCents != 50000000 {
		t.Errorf("subtotal = %d, want 50000000", got.SubtotalCents)
	}
	if got.GCTCents != 7500000 {
		t.Errorf("gct = %d, want 7500000", got.GCTCents)
	}
	if got.TotalCents != 57500000 {
		t.Errorf("total = %d, want 57500000", got.TotalCents)
	}
}

func TestParsePrice_Coercion(t *testing.T) {
	tests := []struct {
		in   string
		want Price
	}{
		{"1000000", 100000000},
		{"1,500,000", 150000000},
		{"1234.56", 123456},
		{"  42  ", 4200},
		{"", 0},
		{"not-a-number", 0},
		{"$100", 0},
		{"-1000000", 0},
		{"-0.01", 0},
	}

	for _, tt := range tests {
		if got := ParsePrice(tt.in); got != tt.want {
			t.Errorf("ParsePrice(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Price
	}{
		{name: "number", in: `1000000`, want: 100000000},
		{name: "decimal number", in: `1234.56`, want: 123456},
		{name: "numeric string", in: `"500000"`, want: 50000000},
		{name: "grouped string", in: `"1,500,000"`, want: 150000000},
		{name: "empty string", in: `""`, want: 0},
		{name: "garbage string", in: `"abc"`, want: 0},
		{name: "null", in: `null`, want: 0},
		{name: "object", in: `{}`, want: 0},
		{name: "negative number", in: `-1000000`, want: 0},
		{name: "negative string", in: `"-500"`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			if err := json.Unmarshal([]byte(tt.in), &p); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.in, err)
			}
			if p != tt.want {
				t.Errorf("unmarshal %q = %d, want %d", tt.in, p, tt.want)
			}
		})
	}
}
