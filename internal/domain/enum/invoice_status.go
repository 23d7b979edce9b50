package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceStatus represents the status of an invoice
type InvoiceStatus int

const (
	InvoiceStatusPending   InvoiceStatus = 0
	InvoiceStatusPaid      InvoiceStatus = 1
	InvoiceStatusCancelled InvoiceStatus = 2
)

func (s InvoiceStatus) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return [...]string{"Pending", "Paid", "Cancelled"}[s]
}

// IsValid reports whether the value is one of the defined statuses
func (s InvoiceStatus) IsValid() bool {
	return s >= InvoiceStatusPending && s <= InvoiceStatusCancelled
}

// CanTransitionTo reports whether the status change is allowed. Only a
// pending invoice can change state; paid and cancelled are terminal.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	return s == InvoiceStatusPending &&
		(target == InvoiceStatusPaid || target == InvoiceStatusCancelled)
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = InvoiceStatusPending
	case "Paid":
		*s = InvoiceStatusPaid
	case "Cancelled":
		*s = InvoiceStatusCancelled
	}
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}
