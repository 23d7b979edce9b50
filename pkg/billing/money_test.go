package billing

import (
	"testing"
	"time"
)

func TestFormatJMD(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "JMD $0.00"},
		{5, "JMD $0.05"},
		{99, "JMD $0.99"},
		{100, "JMD $1.00"},
		{123456, "JMD $1,234.56"},
		{150000000, "JMD $1,500,000.00"},
		{22500000, "JMD $225,000.00"},
		{172500000, "JMD $1,725,000.00"},
		{-4200, "JMD -$42.00"},
	}

	for _, tt := range tests {
		if got := FormatJMD(tt.cents); got != tt.want {
			t.Errorf("FormatJMD(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatIssueDate(t *testing.T) {
	d := time.Date(2026, time.March, 7, 10, 30, 0, 0, time.UTC)
	if got := FormatIssueDate(d); got != "March 7, 2026" {
		t.Errorf("FormatIssueDate = %q, want %q", got, "March 7, 2026")
	}
}
