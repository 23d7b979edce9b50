package document

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// RenderPDF encodes the document as PDF bytes. A rendering failure returns
// an error and no bytes; callers never receive a truncated document.
func RenderPDF(doc *Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, doc)
	addPDFCustomer(m, doc)
	addPDFVehicleTable(m, doc)
	addPDFSummary(m, doc)
	if doc.Enrichment != "" {
		addPDFEnrichment(m, doc)
	}
	addPDFFooter(m, doc)

	pdfDoc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfDoc.GetBytes(), nil
}

func addPDFHeader(m core.Maroto, doc *Document) {
	m.AddRow(26,
		col.New(6).Add(
			text.New(doc.Title.CompanyName, props.Text{
				Size:  18,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
			text.New(fmt.Sprintf("Invoice #: %s", doc.Title.InvoiceNumber), props.Text{
				Size:  10,
				Top:   10,
				Align: align.Left,
			}),
		),
		col.New(6).Add(
			text.New("INVOICE", props.Text{
				Size:  20,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
			text.New(fmt.Sprintf("Date: %s", doc.Title.IssueDate), props.Text{
				Size:  10,
				Top:   10,
				Align: align.Right,
			}),
			text.New(fmt.Sprintf("Status: %s", doc.Title.Status), props.Text{
				Size:  10,
				Top:   15,
				Align: align.Right,
			}),
		),
	)

	m.AddRow(5, line.NewCol(12))
}

func addPDFCustomer(m core.Maroto, doc *Document) {
	m.AddRow(34,
		col.New(12).Add(
			text.New("CUSTOMER INFORMATION", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
			text.New(fmt.Sprintf("Name: %s", doc.Customer.FullName), props.Text{
				Size:  9,
				Top:   6,
				Align: align.Left,
			}),
			text.New(fmt.Sprintf("TRN: %s", doc.Customer.TRN), props.Text{
				Size:  9,
				Top:   11,
				Align: align.Left,
			}),
			text.New(fmt.Sprintf("Address: %s", doc.Customer.Address), props.Text{
				Size:  9,
				Top:   16,
				Align: align.Left,
			}),
			text.New(fmt.Sprintf("Phone: %s", doc.Customer.Phone), props.Text{
				Size:  9,
				Top:   21,
				Align: align.Left,
			}),
			text.New(fmt.Sprintf("Email: %s", doc.Customer.Email), props.Text{
				Size:  9,
				Top:   26,
				Align: align.Left,
			}),
		),
	)

	m.AddRow(5, line.NewCol(12))
}

// vehicleColumnWidths maps the 7 table columns onto maroto's 12-column grid.
var vehicleColumnWidths = []int{2, 2, 1, 3, 1, 1, 2}

func addPDFVehicleTable(m core.Maroto, doc *Document) {
	headers := doc.Vehicles.Columns()
	headerCols := make([]core.Col, len(headers))
	for i, h := range headers {
		a := align.Left
		if i == len(headers)-1 {
			a = align.Right
		}
		headerCols[i] = col.New(vehicleColumnWidths[i]).Add(
			text.New(h, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: a,
			}),
		)
	}
	m.AddRow(8, headerCols...)
	m.AddRow(2, line.NewCol(12))

	for _, row := range doc.Vehicles.Rows {
		cells := []string{row.Make, row.Model, row.Year, row.VIN, row.Color, row.Mileage, row.Price}
		rowCols := make([]core.Col, len(cells))
		for i, cell := range cells {
			a := align.Left
			if i == len(cells)-1 {
				a = align.Right
			}
			rowCols[i] = col.New(vehicleColumnWidths[i]).Add(
				text.New(cell, props.Text{
					Size:  8,
					Align: a,
				}),
			)
		}
		m.AddRow(7, rowCols...)
	}

	m.AddRow(3, line.NewCol(12))
}

func addPDFSummary(m core.Maroto, doc *Document) {
	m.AddRow(6,
		col.New(7),
		col.New(2).Add(
			text.New("Subtotal:", props.Text{Size: 10, Align: align.Right}),
		),
		col.New(3).Add(
			text.New(doc.Summary.Subtotal, props.Text{Size: 10, Align: align.Right}),
		),
	)
	m.AddRow(6,
		col.New(7),
		col.New(2).Add(
			text.New(doc.Summary.GCTLabel+":", props.Text{Size: 10, Align: align.Right}),
		),
		col.New(3).Add(
			text.New(doc.Summary.GCT, props.Text{Size: 10, Align: align.Right}),
		),
	)

	m.AddRow(2, col.New(7), line.NewCol(5))
	m.AddRow(8,
		col.New(7),
		col.New(2).Add(
			text.New("TOTAL DUE:", props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
		col.New(3).Add(
			text.New(doc.Summary.Total, props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
	)
}

func addPDFEnrichment(m core.Maroto, doc *Document) {
	m.AddRow(5)
	m.AddRow(5, line.NewCol(12))
	m.AddRow(18,
		col.New(12).Add(
			text.New("SALES NOTE", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
			text.New(doc.Enrichment, props.Text{
				Size:  9,
				Top:   6,
				Style: fontstyle.Italic,
				Align: align.Left,
			}),
		),
	)
}

func addPDFFooter(m core.Maroto, doc *Document) {
	m.AddRow(8)
	m.AddRow(5, line.NewCol(12))
	m.AddRow(12,
		col.New(12).Add(
			text.New(doc.Footer.ThankYou, props.Text{
				Size:  9,
				Align: align.Center,
			}),
			text.New(doc.Footer.Contact, props.Text{
				Size:  9,
				Top:   5,
				Align: align.Center,
				Color: &props.Color{Red: 128, Green: 128, Blue: 128},
			}),
		),
	)
}
