package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/steelwheel/dealership-api/internal/domain/entity"
	"github.com/steelwheel/dealership-api/internal/domain/enum"
	domainRepo "github.com/steelwheel/dealership-api/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// CreateWithCustomer persists the customer (when new) and the invoice with
// its vehicle lines in one transaction so a failed insert leaves nothing
// behind.
func (r *invoiceRepository) CreateWithCustomer(ctx context.Context, customer *entity.Customer, customerIsNew bool, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if customerIsNew {
			if err := tx.Create(customer).Error; err != nil {
				return err
			}
		}
		invoice.CustomerID = customer.ID
		// Vehicle lines ride along via the association.
		return tx.Create(invoice).Error
	})
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicles", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *invoiceRepository) UpdateEnrichment(ctx context.Context, id uuid.UUID, enrichment string) error {
	return r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ?", id).
		Update("enrichment", enrichment).Error
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.Search != "" {
		query = query.Where("invoice_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.StartDate != nil {
		query = query.Where("issue_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("issue_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Vehicles", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC, id DESC").
		Find(&invoices).Error

	return invoices, total, err
}

// ListWithCursor returns invoices newest first using keyset pagination
func (r *invoiceRepository) ListWithCursor(ctx context.Context, params *domainRepo.InvoiceCursorFilterParams) ([]entity.Invoice, error) {
	var invoices []entity.Invoice

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.Search != "" {
		query = query.Where("invoice_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	cursor, err := params.Cursor.Decode()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Customer").
		Preload("Vehicles", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC, id DESC").
		Find(&invoices).Error

	return invoices, err
}

func (r *invoiceRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Vehicles", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) Stats(ctx context.Context) (*domainRepo.InvoiceStats, error) {
	stats := &domainRepo.InvoiceStats{}
	db := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if err := db.Count(&stats.TotalInvoices).Error; err != nil {
		return nil, err
	}

	type statusCount struct {
		Status enum.InvoiceStatus
		Count  int64
	}
	var counts []statusCount
	if err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	for _, c := range counts {
		switch c.Status {
		case enum.InvoiceStatusPending:
			stats.PendingInvoices = c.Count
		case enum.InvoiceStatusPaid:
			stats.PaidInvoices = c.Count
		case enum.InvoiceStatusCancelled:
			stats.CancelledInvoices = c.Count
		}
	}

	if err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("status = ?", enum.InvoiceStatusPaid).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.RevenueCents).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entity.InvoiceVehicle{}).
		Joins("JOIN invoices ON invoices.id = invoice_vehicles.invoice_id").
		Where("invoices.status = ? AND invoices.deleted_at IS NULL", enum.InvoiceStatusPaid).
		Count(&stats.VehiclesSold).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
