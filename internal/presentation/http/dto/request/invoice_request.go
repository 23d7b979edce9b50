package request

import (
	"github.com/steelwheel/dealership-api/pkg/billing"
)

// CustomerRequest carries buyer details on invoice submission
type CustomerRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,max=50"`
	TRN      string `json:"trn" binding:"required,max=50"`
	Address  string `json:"address" binding:"required"`
}

// VehicleRequest carries one vehicle line. Price accepts a JSON number or
// numeric string; anything unparseable coerces to zero rather than failing
// the submission.
type VehicleRequest struct {
	Make    string        `json:"make" binding:"required,max=100"`
	Model   string        `json:"model" binding:"required,max=100"`
	Year    int           `json:"year" binding:"required,min=1900,max=2100"`
	VIN     string        `json:"vin" binding:"required,max=50"`
	Color   string        `json:"color" binding:"max=50"`
	Mileage *int          `json:"mileage" binding:"omitempty,min=0"`
	Price   billing.Price `json:"price"`
}

// CreateInvoiceRequest represents an invoice submission
type CreateInvoiceRequest struct {
	Customer CustomerRequest  `json:"customer" binding:"required"`
	Vehicles []VehicleRequest `json:"vehicles" binding:"required,min=1,dive"`
}

// UpdateInvoiceStatusRequest represents an invoice status change
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Paid Cancelled"`
}

// DocumentRequest represents an ad-hoc document render payload. The invoice
// block mirrors a stored invoice; nothing is persisted.
type DocumentRequest struct {
	Invoice  DocumentInvoiceRequest `json:"invoice" binding:"required"`
	Customer CustomerRequest        `json:"customer" binding:"required"`
}

// DocumentInvoiceRequest is the invoice block of an ad-hoc document payload
type DocumentInvoiceRequest struct {
	InvoiceNumber string           `json:"invoice_number" binding:"required,max=100"`
	IssueDate     string           `json:"issue_date" binding:"required"` // YYYY-MM-DD
	Status        string           `json:"status" binding:"omitempty,oneof=Pending Paid Cancelled"`
	Vehicles      []VehicleRequest `json:"vehicles" binding:"required,min=1,dive"`
}
