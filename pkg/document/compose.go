package document

import (
	"strings"
	"time"

	"github.com/steelwheel/dealership-api/pkg/billing"
)

// VehicleInput is one vehicle line as supplied to the composer.
type VehicleInput struct {
	Make    string
	Model   string
	Year    string
	VIN     string
	Color   string
	Mileage string
	Price   billing.Price
}

// CustomerInput is the customer as supplied to the composer.
type CustomerInput struct {
	FullName string
	TRN      string
	Address  string
	Phone    string
	Email    string
}

// Input is everything Compose needs to build a document.
type Input struct {
	CompanyName   string
	InvoiceNumber string
	IssueDate     time.Time
	Status        string
	Customer      CustomerInput
	Vehicles      []VehicleInput
	Totals        billing.Totals
	// Enrichment is an optional prose paragraph sourced from the
	// content-enrichment service. Empty or whitespace-only input leaves
	// the document without the paragraph.
	Enrichment string
}

const (
	footerThankYou = "Thank you for choosing SteelWheel Auto."
	footerContact  = "For any inquiries, please contact us."
)

// Compose builds the document tree for an invoice. It is pure and never
// fails on well-formed input: every supplied vehicle becomes exactly one
// row, in input order, and the presence or absence of the enrichment
// paragraph changes nothing outside its own block.
func Compose(in Input) *Document {
	doc := &Document{
		Title: TitleBlock{
			CompanyName:   in.CompanyName,
			InvoiceNumber: in.InvoiceNumber,
			IssueDate:     billing.FormatIssueDate(in.IssueDate),
			Status:        in.Status,
		},
		Customer: CustomerBlock{
			FullName: in.Customer.FullName,
			TRN:      in.Customer.TRN,
			Address:  in.Customer.Address,
			Phone:    in.Customer.Phone,
			Email:    in.Customer.Email,
		},
		Summary: SummaryBlock{
			Subtotal: billing.FormatJMD(in.Totals.SubtotalCents),
			GCTLabel: "GCT (" + billing.GCTPercent + ")",
			GCT:      billing.FormatJMD(in.Totals.GCTCents),
			Total:    billing.FormatJMD(in.Totals.TotalCents),
		},
		Enrichment: strings.TrimSpace(in.Enrichment),
		Footer: FooterBlock{
			ThankYou: footerThankYou,
			Contact:  footerContact,
		},
	}

	doc.Vehicles.Rows = make([]VehicleRow, len(in.Vehicles))
	for i, v := range in.Vehicles {
		doc.Vehicles.Rows[i] = VehicleRow{
			Make:    v.Make,
			Model:   v.Model,
			Year:    v.Year,
			VIN:     v.VIN,
			Color:   v.Color,
			Mileage: v.Mileage,
			Price:   billing.FormatJMD(v.Price.Cents()),
		}
	}

	return doc
}
