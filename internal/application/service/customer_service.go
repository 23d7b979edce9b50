package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/steelwheel/dealership-api/internal/domain/entity"
	"github.com/steelwheel/dealership-api/internal/domain/repository"
	"github.com/steelwheel/dealership-api/pkg/apperror"
	"github.com/steelwheel/dealership-api/pkg/pagination"
)

// CustomerService handles customer read operations. Customers are created
// through invoice submission, never directly.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// List returns customers with page-based pagination and optional search
func (s *CustomerService) List(ctx context.Context, params *pagination.Params, search string) ([]entity.Customer, *pagination.Pagination, error) {
	params.Validate()

	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, nil, err
	}

	return customers, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

// CustomerDetail bundles a customer with their invoice history
type CustomerDetail struct {
	Customer *entity.Customer `json:"customer"`
	Invoices []entity.Invoice `json:"invoices"`
}

// Get returns a customer and their invoices
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*CustomerDetail, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	invoices, err := s.invoiceRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	return &CustomerDetail{
		Customer: customer,
		Invoices: invoices,
	}, nil
}
