package document

import (
	"fmt"
	"strings"
)

const textWidth = 55

// RenderText lays the document out as a flat formatted text block, the
// lightweight download/fallback format.
func RenderText(doc *Document) string {
	var b strings.Builder

	banner := strings.Repeat("=", textWidth)
	rule := strings.Repeat("-", textWidth)

	b.WriteString(banner + "\n")
	b.WriteString(centerLine(strings.ToUpper(doc.Title.CompanyName)+" INVOICE") + "\n")
	b.WriteString(banner + "\n\n")

	b.WriteString("INVOICE NUMBER: " + doc.Title.InvoiceNumber + "\n")
	b.WriteString("DATE: " + doc.Title.IssueDate + "\n")
	b.WriteString("STATUS: " + doc.Title.Status + "\n\n")

	b.WriteString(rule + "\n")
	b.WriteString("CUSTOMER INFORMATION\n")
	b.WriteString(rule + "\n")
	b.WriteString("Name: " + doc.Customer.FullName + "\n")
	b.WriteString("TRN: " + doc.Customer.TRN + "\n")
	b.WriteString("Address: " + doc.Customer.Address + "\n")
	b.WriteString("Phone: " + doc.Customer.Phone + "\n")
	b.WriteString("Email: " + doc.Customer.Email + "\n\n")

	b.WriteString(rule + "\n")
	b.WriteString("VEHICLE INFORMATION\n")
	b.WriteString(rule + "\n")
	for i, row := range doc.Vehicles.Rows {
		fmt.Fprintf(&b, "Vehicle #%d:\n", i+1)
		b.WriteString("  Make: " + row.Make + "\n")
		b.WriteString("  Model: " + row.Model + "\n")
		b.WriteString("  Year: " + row.Year + "\n")
		b.WriteString("  VIN: " + row.VIN + "\n")
		b.WriteString("  Color: " + row.Color + "\n")
		b.WriteString("  Mileage: " + row.Mileage + "\n")
		b.WriteString("  Price: " + row.Price + "\n")
		if i < len(doc.Vehicles.Rows)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(rule + "\n")
	b.WriteString("SUMMARY\n")
	b.WriteString(rule + "\n")
	b.WriteString("Subtotal: " + doc.Summary.Subtotal + "\n")
	b.WriteString(doc.Summary.GCTLabel + ": " + doc.Summary.GCT + "\n\n")
	b.WriteString("TOTAL DUE: " + doc.Summary.Total + "\n\n")

	if doc.Enrichment != "" {
		b.WriteString(rule + "\n")
		b.WriteString("SALES NOTE\n")
		b.WriteString(rule + "\n")
		b.WriteString(doc.Enrichment + "\n\n")
	}

	b.WriteString(banner + "\n")
	b.WriteString(doc.Footer.ThankYou + "\n")
	b.WriteString(doc.Footer.Contact + "\n")
	b.WriteString(banner + "\n")

	return b.String()
}

func centerLine(s string) string {
	if len(s) >= textWidth {
		return s
	}
	pad := (textWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
