// Package document turns a finalized invoice into a distributable document.
// Composition is split from rendering: Compose builds an encoding-agnostic
// tree, and the renderers (plain text, PDF) lay that tree out without ever
// touching field values, so every output format carries identical data.
package document

// Document is the structured, encoding-agnostic invoice document. Blocks
// appear in the fixed order Title, Customer, Vehicles, Summary, optional
// Enrichment, Footer.
type Document struct {
	Title      TitleBlock
	Customer   CustomerBlock
	Vehicles   VehicleTable
	Summary    SummaryBlock
	Enrichment string // optional prose paragraph; empty means absent
	Footer     FooterBlock
}

// TitleBlock identifies the invoice.
type TitleBlock struct {
	CompanyName   string
	InvoiceNumber string
	IssueDate     string // preformatted, e.g. "January 2, 2006"
	Status        string
}

// CustomerBlock carries the customer fields verbatim.
type CustomerBlock struct {
	FullName string
	TRN      string
	Address  string
	Phone    string
	Email    string
}

// VehicleTable lists one row per vehicle in input order.
type VehicleTable struct {
	Rows []VehicleRow
}

// VehicleRow is a single vehicle line. Price is preformatted currency so
// renderers cannot diverge on numeric formatting.
type VehicleRow struct {
	Make    string
	Model   string
	Year    string
	VIN     string
	Color   string
	Mileage string
	Price   string
}

// Columns returns the fixed table header labels in render order.
func (VehicleTable) Columns() []string {
	return []string{"Make", "Model", "Year", "VIN", "Color", "Mileage", "Price (JMD)"}
}

// SummaryBlock holds the preformatted totals. Total is rendered visually
// distinguished from the other two lines.
type SummaryBlock struct {
	Subtotal string
	GCTLabel string // includes the rate, e.g. "GCT (15%)"
	GCT      string
	Total    string
}

// FooterBlock is the fixed closing text.
type FooterBlock struct {
	ThankYou string
	Contact  string
}
