package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/steelwheel/dealership-api/internal/domain/entity"
	"github.com/steelwheel/dealership-api/internal/domain/enum"
	"github.com/steelwheel/dealership-api/pkg/pagination"
)

// InvoiceFilterParams contains filtering parameters for invoice list queries
type InvoiceFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.InvoiceStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// InvoiceCursorFilterParams contains keyset filtering for invoice list queries
type InvoiceCursorFilterParams struct {
	Cursor *pagination.CursorParams
	Search string
	Status *enum.InvoiceStatus
}

// InvoiceStats aggregates invoice counts and paid revenue for the dashboard
type InvoiceStats struct {
	TotalInvoices     int64
	PendingInvoices   int64
	PaidInvoices      int64
	CancelledInvoices int64
	RevenueCents      int64 // Sum of totals over paid invoices
	VehiclesSold      int64 // Vehicle lines on paid invoices
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// CreateWithCustomer persists the customer (when new) and the invoice
	// with its vehicle lines in a single transaction.
	CreateWithCustomer(ctx context.Context, customer *entity.Customer, customerIsNew bool, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error
	UpdateEnrichment(ctx context.Context, id uuid.UUID, enrichment string) error
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	ListWithCursor(ctx context.Context, params *InvoiceCursorFilterParams) ([]entity.Invoice, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Invoice, error)
	Stats(ctx context.Context) (*InvoiceStats, error)
}
