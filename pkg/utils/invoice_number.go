package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateInvoiceNumber builds a human-facing invoice number of the form
// INV-YYYYMMDD-NNN, where NNN is a random three-digit suffix. Uniqueness is
// best effort; callers are expected to check the store and re-roll on a
// collision, with the database unique index as the final backstop.
func GenerateInvoiceNumber(now time.Time) string {
	suffix := rand.Intn(900) + 100
	return fmt.Sprintf("INV-%s-%d", now.Format("20060102"), suffix)
}
