package utils

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateInvoiceNumber_Format(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^INV-20260301-[1-9]\d{2}$`)

	for i := 0; i < 1000; i++ {
		got := GenerateInvoiceNumber(now)
		if !pattern.MatchString(got) {
			t.Fatalf("invoice number %q does not match expected format", got)
		}
	}
}

func TestGenerateInvoiceNumber_SuffixSpread(t *testing.T) {
	// The suffix space is only 900 values, so a run of 1,000 generations
	// will collide; what matters is that the generator actually spreads
	// across the space instead of repeating a handful of values.
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		seen[GenerateInvoiceNumber(now)] = struct{}{}
	}

	// Expected distinct count is around 600; anything under 300 would mean
	// the randomness is broken.
	if len(seen) < 300 {
		t.Errorf("only %d distinct numbers out of 1000 generations", len(seen))
	}
}
