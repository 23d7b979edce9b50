package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/steelwheel/dealership-api/internal/domain/entity"
	"github.com/steelwheel/dealership-api/internal/domain/enum"
	"github.com/steelwheel/dealership-api/internal/domain/repository"
	"github.com/steelwheel/dealership-api/pkg/apperror"
	"github.com/steelwheel/dealership-api/pkg/billing"
	"github.com/steelwheel/dealership-api/pkg/pagination"
	"github.com/steelwheel/dealership-api/pkg/utils"
)

// InvoiceService handles invoice creation and lifecycle
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	now          func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

// CustomerInput carries buyer details on invoice submission
type CustomerInput struct {
	FullName string
	Email    string
	Phone    string
	TRN      string
	Address  string
}

// VehicleInput carries one vehicle line on invoice submission
type VehicleInput struct {
	Make    string
	Model   string
	Year    int
	VIN     string
	Color   string
	Mileage *int
	Price   billing.Price
}

// CreateInvoiceInput represents the invoice creation input
type CreateInvoiceInput struct {
	Customer CustomerInput
	Vehicles []VehicleInput
}

// Create computes totals, resolves the customer by TRN and persists the
// invoice with its vehicle lines in one transaction. Vehicle order is
// preserved exactly as submitted.
func (s *InvoiceService) Create(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if len(input.Vehicles) == 0 {
		return nil, apperror.NewBadRequestError("At least one vehicle is required")
	}

	// Decoded prices are already non-negative; clamp here too so callers
	// constructing the input directly cannot persist a negative amount.
	for i := range input.Vehicles {
		if input.Vehicles[i].Price < 0 {
			input.Vehicles[i].Price = 0
		}
	}

	totals := billing.ComputeTotals(billing.VehiclePrices(input.Vehicles, func(v VehicleInput) billing.Price {
		return v.Price
	}))

	customer, customerIsNew, err := s.resolveCustomer(ctx, &input.Customer)
	if err != nil {
		return nil, err
	}

	now := s.now()
	invoice := &entity.Invoice{
		InvoiceNo: utils.GenerateInvoiceNumber(now),
		IssueDate: now,
		Status:    enum.InvoiceStatusPending,
		SubTotal:  totals.SubtotalCents,
		GCT:       totals.GCTCents,
		Total:     totals.TotalCents,
	}
	for i, v := range input.Vehicles {
		invoice.Vehicles = append(invoice.Vehicles, entity.InvoiceVehicle{
			Position: i,
			Make:     v.Make,
			Model:    v.Model,
			Year:     v.Year,
			VIN:      v.VIN,
			Color:    v.Color,
			Mileage:  v.Mileage,
			Price:    int64(v.Price),
		})
	}

	// The random suffix can collide within a day. Re-roll once before
	// handing the conflict to the database's unique index.
	if existing, err := s.invoiceRepo.GetByInvoiceNo(ctx, invoice.InvoiceNo); err != nil {
		return nil, err
	} else if existing != nil {
		invoice.InvoiceNo = utils.GenerateInvoiceNumber(now)
	}

	if err := s.invoiceRepo.CreateWithCustomer(ctx, customer, customerIsNew, invoice); err != nil {
		return nil, err
	}
	invoice.Customer = *customer

	return invoice, nil
}

// resolveCustomer reuses an existing customer matched by TRN, refreshing
// their contact details from the submission, or prepares a new record.
func (s *InvoiceService) resolveCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, bool, error) {
	existing, err := s.customerRepo.GetByTRN(ctx, input.TRN)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		existing.FullName = input.FullName
		existing.Email = input.Email
		existing.Phone = input.Phone
		existing.Address = input.Address
		if err := s.customerRepo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	return &entity.Customer{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		TRN:      input.TRN,
		Address:  input.Address,
	}, true, nil
}

// Get returns an invoice with its customer and vehicle lines
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInput represents invoice list filters
type ListInput struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.InvoiceStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// List returns invoices newest first with page-based pagination
func (s *InvoiceService) List(ctx context.Context, input *ListInput) ([]entity.Invoice, *pagination.Pagination, error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultParams()
	}
	input.Pagination.Validate()

	invoices, total, err := s.invoiceRepo.List(ctx, &repository.InvoiceFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		CustomerID: input.CustomerID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	})
	if err != nil {
		return nil, nil, err
	}

	return invoices, pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total), nil
}

// ListWithCursor returns invoices newest first with keyset pagination
func (s *InvoiceService) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string, status *enum.InvoiceStatus) (*pagination.CursorResult[entity.Invoice], error) {
	params.Validate()

	invoices, err := s.invoiceRepo.ListWithCursor(ctx, &repository.InvoiceCursorFilterParams{
		Cursor: params,
		Search: search,
		Status: status,
	})
	if err != nil {
		return nil, err
	}

	meta, items := pagination.NewCursorPagination(invoices, params.Limit,
		func(i entity.Invoice) string { return i.ID.String() },
		func(i entity.Invoice) time.Time { return i.CreatedAt })

	return pagination.NewCursorResult(items, meta), nil
}

// UpdateStatus moves an invoice to a new status. Only pending invoices can
// change state.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) (*entity.Invoice, error) {
	invoice, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid invoice status")
	}
	if !invoice.Status.CanTransitionTo(status) {
		return nil, apperror.NewConflictError("Invoice status cannot change from " + invoice.Status.String() + " to " + status.String())
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	invoice.Status = status

	return invoice, nil
}
