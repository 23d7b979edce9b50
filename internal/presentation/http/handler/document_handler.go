package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/steelwheel/dealership-api/internal/application/service"
	"github.com/steelwheel/dealership-api/internal/presentation/http/dto/request"
	"github.com/steelwheel/dealership-api/internal/presentation/http/dto/response"
	"github.com/steelwheel/dealership-api/pkg/billing"
	"github.com/steelwheel/dealership-api/pkg/document"
)

// DocumentHandler handles invoice document rendering and dispatch
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Render handles ad-hoc document generation from a request payload.
// Nothing is persisted; the rendered document is returned directly.
// @Summary Render document
// @Description Render an invoice document from an ad-hoc payload
// @Tags documents
// @Accept json
// @Produce application/pdf
// @Param format query string false "pdf or text" default(pdf)
// @Param request body request.DocumentRequest true "Document payload"
// @Success 200 {file} binary
// @Failure 400 {object} response.APIResponse
// @Router /invoices/documents [post]
func (h *DocumentHandler) Render(c *gin.Context) {
	var req request.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	format, ok := parseFormat(c)
	if !ok {
		response.BadRequest(c, "Unsupported format, expected pdf or text")
		return
	}

	issueDate, err := time.Parse("2006-01-02", req.Invoice.IssueDate)
	if err != nil {
		response.BadRequest(c, "Invalid issue date, expected YYYY-MM-DD")
		return
	}

	status := req.Invoice.Status
	if status == "" {
		status = "Pending"
	}

	input := document.Input{
		InvoiceNumber: req.Invoice.InvoiceNumber,
		IssueDate:     issueDate,
		Status:        status,
		Customer: document.CustomerInput{
			FullName: req.Customer.FullName,
			TRN:      req.Customer.TRN,
			Address:  req.Customer.Address,
			Phone:    req.Customer.Phone,
			Email:    req.Customer.Email,
		},
	}

	prices := make([]billing.Price, 0, len(req.Invoice.Vehicles))
	for _, v := range req.Invoice.Vehicles {
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
			Price:   v.Price,
		})
		prices = append(prices, v.Price)
	}
	input.Totals = billing.ComputeTotals(prices)

	rendered, err := h.documentService.Generate(c.Request.Context(), input, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	serveDocument(c, rendered)
}

// Download handles document generation for a stored invoice
// @Summary Download invoice document
// @Description Render the document for a stored invoice
// @Tags documents
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Param format query string false "pdf or text" default(pdf)
// @Success 200 {file} binary
// @Failure 404 {object} response.APIResponse
// @Router /invoices/{id}/document [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	format, ok := parseFormat(c)
	if !ok {
		response.BadRequest(c, "Unsupported format, expected pdf or text")
		return
	}

	rendered, err := h.documentService.GenerateForInvoice(c.Request.Context(), id, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	serveDocument(c, rendered)
}

// Email handles sending a stored invoice to its customer
// @Summary Email invoice
// @Description Render the invoice as PDF and email it to the customer
// @Tags documents
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /invoices/{id}/email [post]
func (h *DocumentHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	messageID, err := h.documentService.EmailInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice emailed", gin.H{"message_id": messageID})
}

func parseFormat(c *gin.Context) (service.DocumentFormat, bool) {
	switch c.DefaultQuery("format", "pdf") {
	case "pdf":
		return service.FormatPDF, true
	case "text":
		return service.FormatText, true
	default:
		return "", false
	}
}

func serveDocument(c *gin.Context, rendered *service.RenderedDocument) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rendered.Filename))
	c.Data(200, rendered.ContentType, rendered.Content)
}
