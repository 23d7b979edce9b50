package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/steelwheel/dealership-api/internal/application/service"
	"github.com/steelwheel/dealership-api/internal/domain/enum"
	"github.com/steelwheel/dealership-api/internal/presentation/http/dto/request"
	"github.com/steelwheel/dealership-api/internal/presentation/http/dto/response"
	"github.com/steelwheel/dealership-api/pkg/pagination"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles invoice submission
// @Summary Create invoice
// @Description Create an invoice with customer and vehicle details
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body request.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateInvoiceInput{
		Customer: service.CustomerInput{
			FullName: req.Customer.FullName,
			Email:    req.Customer.Email,
			Phone:    req.Customer.Phone,
			TRN:      req.Customer.TRN,
			Address:  req.Customer.Address,
		},
	}
	for _, v := range req.Vehicles {
		input.Vehicles = append(input.Vehicles, service.VehicleInput{
			Make:    v.Make,
			Model:   v.Model,
			Year:    v.Year,
			VIN:     v.VIN,
			Color:   v.Color,
			Mileage: v.Mileage,
			Price:   v.Price,
		})
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created", gin.H{"invoice": invoice})
}

// List handles invoice listing. Supplying a cursor or limit switches to
// keyset pagination; otherwise page-based pagination applies.
// @Summary List invoices
// @Description List invoices newest first with filtering
// @Tags invoices
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	search := c.Query("search")
	status := parseStatus(c.Query("status"))

	if c.Query("cursor") != "" || c.Query("limit") != "" {
		var cursorParams pagination.CursorParams
		if err := c.ShouldBindQuery(&cursorParams); err != nil {
			response.BadRequest(c, "Invalid pagination parameters")
			return
		}

		result, err := h.invoiceService.ListWithCursor(c.Request.Context(), &cursorParams, search, status)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.OK(c, "Invoices retrieved", result)
		return
	}

	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	input := &service.ListInput{
		Pagination: &params,
		Search:     search,
		Status:     status,
	}
	if v := c.Query("customer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		input.CustomerID = &id
	}
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		input.StartDate = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		input.EndDate = &t
	}

	invoices, meta, err := h.invoiceService.List(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved", pagination.NewResult(invoices, meta))
}

// Get handles single invoice retrieval
// @Summary Get invoice
// @Description Get an invoice with customer and vehicle lines
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved", gin.H{"invoice": invoice})
}

// UpdateStatus handles invoice status transitions
// @Summary Update invoice status
// @Description Move a pending invoice to Paid or Cancelled
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body request.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status := parseStatus(req.Status)
	if status == nil {
		response.BadRequest(c, "Invalid invoice status")
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), id, *status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice status updated", gin.H{"invoice": invoice})
}

// parseStatus maps a status string onto the enum, nil when unrecognized
func parseStatus(s string) *enum.InvoiceStatus {
	var status enum.InvoiceStatus
	switch s {
	case "Pending":
		status = enum.InvoiceStatusPending
	case "Paid":
		status = enum.InvoiceStatusPaid
	case "Cancelled":
		status = enum.InvoiceStatusCancelled
	default:
		return nil
	}
	return &status
}
