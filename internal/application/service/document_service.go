package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/steelwheel/dealership-api/internal/domain/entity"
	"github.com/steelwheel/dealership-api/internal/domain/repository"
	"github.com/steelwheel/dealership-api/pkg/apperror"
	"github.com/steelwheel/dealership-api/pkg/billing"
	"github.com/steelwheel/dealership-api/pkg/document"
	"github.com/steelwheel/dealership-api/pkg/email"
	"github.com/steelwheel/dealership-api/pkg/enrich"
)

// DocumentFormat selects the rendering backend
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatText DocumentFormat = "text"
)

// enrichmentTimeout bounds the OpenAI call so a slow upstream never delays
// document generation past it.
const enrichmentTimeout = 5 * time.Second

// RenderedDocument is a generated invoice document ready to serve or attach
type RenderedDocument struct {
	Content     []byte
	Filename    string
	ContentType string
}

// DocumentService renders invoice documents and dispatches them by email.
// Enrichment is best effort: a failed or slow note generation is logged and
// the document ships without the note.
type DocumentService struct {
	invoiceRepo repository.InvoiceRepository
	enricher    enrich.Enricher
	emailSvc    *email.EmailService
	companyName string
}

// NewDocumentService creates a new document service. enricher may be nil
// when enrichment is not configured.
func NewDocumentService(invoiceRepo repository.InvoiceRepository, enricher enrich.Enricher, emailSvc *email.EmailService, companyName string) *DocumentService {
	return &DocumentService{
		invoiceRepo: invoiceRepo,
		enricher:    enricher,
		emailSvc:    emailSvc,
		companyName: companyName,
	}
}

// GenerateForInvoice renders the document for a stored invoice
func (s *DocumentService) GenerateForInvoice(ctx context.Context, id uuid.UUID, format DocumentFormat) (*RenderedDocument, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	input := s.composeInput(invoice)
	input.Enrichment = s.enrichment(ctx, invoice, input)

	return s.render(input, format)
}

// Generate renders a document from an ad-hoc payload without persisting
// anything. Used for previews before the invoice is submitted.
func (s *DocumentService) Generate(ctx context.Context, input document.Input, format DocumentFormat) (*RenderedDocument, error) {
	if input.CompanyName == "" {
		input.CompanyName = s.companyName
	}
	input.Enrichment = s.adHocEnrichment(ctx, input)
	return s.render(input, format)
}

func (s *DocumentService) render(input document.Input, format DocumentFormat) (*RenderedDocument, error) {
	doc := document.Compose(input)

	switch format {
	case FormatText:
		return &RenderedDocument{
			Content:     []byte(document.RenderText(doc)),
			Filename:    input.InvoiceNumber + ".txt",
			ContentType: "text/plain; charset=utf-8",
		}, nil
	case FormatPDF:
		content, err := document.RenderPDF(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperror.ErrRenderFailed, err.Error())
		}
		return &RenderedDocument{
			Content:     content,
			Filename:    input.InvoiceNumber + ".pdf",
			ContentType: "application/pdf",
		}, nil
	default:
		return nil, apperror.NewBadRequestError("Unsupported document format: " + string(format))
	}
}

// EmailInvoice renders the invoice as PDF and sends it to the customer.
// Returns the transport message ID on success.
func (s *DocumentService) EmailInvoice(ctx context.Context, id uuid.UUID) (string, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if invoice == nil {
		return "", apperror.NewNotFoundError("Invoice")
	}
	if invoice.Customer.Email == "" {
		return "", apperror.NewBadRequestError("Customer has no email address")
	}

	input := s.composeInput(invoice)
	input.Enrichment = s.enrichment(ctx, invoice, input)

	rendered, err := s.render(input, FormatPDF)
	if err != nil {
		return "", err
	}

	messageID, err := s.emailSvc.Send(&email.Message{
		To:      []string{invoice.Customer.Email},
		Subject: fmt.Sprintf("Your %s invoice %s", s.companyName, invoice.InvoiceNo),
		Text: fmt.Sprintf("Dear %s,\n\nPlease find attached invoice %s for your vehicle purchase, totalling %s.\n\n%s",
			invoice.Customer.FullName, invoice.InvoiceNo, billing.FormatJMD(invoice.Total), s.companyName),
		Attachment: &email.Attachment{
			Filename:    rendered.Filename,
			ContentType: rendered.ContentType,
			Content:     rendered.Content,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperror.ErrMailDispatchFailed, err.Error())
	}

	return messageID, nil
}

// composeInput maps a stored invoice onto the composer input
func (s *DocumentService) composeInput(invoice *entity.Invoice) document.Input {
	input := document.Input{
		CompanyName:   s.companyName,
		InvoiceNumber: invoice.InvoiceNo,
		IssueDate:     invoice.IssueDate,
		Status:        invoice.Status.String(),
		Customer: document.CustomerInput{
			FullName: invoice.Customer.FullName,
			TRN:      invoice.Customer.TRN,
			Address:  invoice.Customer.Address,
			Phone:    invoice.Customer.Phone,
			Email:    invoice.Customer.Email,
		},
		Totals: billing.Totals{
			SubtotalCents: invoice.SubTotal,
			GCTCents:      invoice.GCT,
			TotalCents:    invoice.Total,
		},
	}

	for _, v := range invoice.Vehicles {
		mileage := ""
		if v.Mileage != nil {
			mileage = strconv.Itoa(*v.Mileage)
		}
		input.Vehicles = append(input.Vehicles, document.VehicleInput{
			Make:    v.Make,
			Model:   v.Model,
			Year:    strconv.Itoa(v.Year),
			VIN:     v.VIN,
			Color:   v.Color,
			Mileage: mileage,
			Price:   billing.Price(v.Price),
		})
	}

	return input
}

// enrichment returns the sales note for a stored invoice, generating and
// caching one on first use. Failures are logged and swallowed.
func (s *DocumentService) enrichment(ctx context.Context, invoice *entity.Invoice, input document.Input) string {
	if invoice.Enrichment != "" {
		return invoice.Enrichment
	}
	note := s.adHocEnrichment(ctx, input)
	if note != "" {
		if err := s.invoiceRepo.UpdateEnrichment(ctx, invoice.ID, note); err != nil {
			log.Printf("Warning: failed to cache enrichment for invoice %s: %v", invoice.InvoiceNo, err)
		}
	}
	return note
}

// adHocEnrichment generates a sales note for the composed input, or returns
// an empty string when enrichment is unavailable or fails.
func (s *DocumentService) adHocEnrichment(ctx context.Context, input document.Input) string {
	if s.enricher == nil {
		return ""
	}

	summary := enrich.Summary{
		CustomerName:  input.Customer.FullName,
		TotalDisplay:  billing.FormatJMD(input.Totals.TotalCents),
		InvoiceNumber: input.InvoiceNumber,
	}
	for _, v := range input.Vehicles {
		summary.VehicleLines = append(summary.VehicleLines, fmt.Sprintf("%s %s %s", v.Year, v.Make, v.Model))
	}

	enrichCtx, cancel := context.WithTimeout(ctx, enrichmentTimeout)
	defer cancel()

	note, err := s.enricher.SalesNote(enrichCtx, summary)
	if err != nil {
		log.Printf("Warning: enrichment failed for invoice %s: %v", input.InvoiceNumber, err)
		return ""
	}
	return note
}
