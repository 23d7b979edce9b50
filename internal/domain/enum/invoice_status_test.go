package enum

import (
	"encoding/json"
	"testing"
)

func TestInvoiceStatusTransitions(t *testing.T) {
	if !InvoiceStatusPending.CanTransitionTo(InvoiceStatusPaid) {
		t.Error("pending should allow paid")
	}
	if !InvoiceStatusPending.CanTransitionTo(InvoiceStatusCancelled) {
		t.Error("pending should allow cancelled")
	}
	if InvoiceStatusPaid.CanTransitionTo(InvoiceStatusCancelled) {
		t.Error("paid is terminal")
	}
	if InvoiceStatusCancelled.CanTransitionTo(InvoiceStatusPaid) {
		t.Error("cancelled is terminal")
	}
	if InvoiceStatusPending.CanTransitionTo(InvoiceStatusPending) {
		t.Error("self transition should be rejected")
	}
}

func TestInvoiceStatusString(t *testing.T) {
	if got := InvoiceStatusPaid.String(); got != "Paid" {
		t.Errorf("String() = %q, want Paid", got)
	}
	// Out-of-range values, for instance from a hand-edited database row,
	// must not panic.
	if got := InvoiceStatus(7).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
	if got := InvoiceStatus(-1).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}

func TestInvoiceStatusJSON(t *testing.T) {
	out, err := json.Marshal(InvoiceStatusPaid)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"Paid"` {
		t.Errorf("marshal = %s, want \"Paid\"", out)
	}

	var s InvoiceStatus
	if err := json.Unmarshal([]byte(`"Cancelled"`), &s); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if s != InvoiceStatusCancelled {
		t.Errorf("unmarshal string = %v", s)
	}

	// Integer payloads are accepted for older clients.
	if err := json.Unmarshal([]byte(`1`), &s); err != nil {
		t.Fatalf("unmarshal int: %v", err)
	}
	if s != InvoiceStatusPaid {
		t.Errorf("unmarshal int = %v", s)
	}
}

func TestInvoiceStatusScan(t *testing.T) {
	var s InvoiceStatus
	if err := s.Scan(int64(2)); err != nil {
		t.Fatalf("scan int64: %v", err)
	}
	if s != InvoiceStatusCancelled {
		t.Errorf("scan int64 = %v", s)
	}

	v, err := InvoiceStatusPaid.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != int64(1) {
		t.Errorf("value = %v, want 1", v)
	}
}
