package service

import (
	"context"
	"encoding/json"

	"github.com/steelwheel/dealership-api/internal/domain/repository"
)

// DashboardService aggregates invoice counts and revenue for the overview
type DashboardService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(invoiceRepo repository.InvoiceRepository) *DashboardService {
	return &DashboardService{invoiceRepo: invoiceRepo}
}

// DashboardStats is the overview payload
type DashboardStats struct {
	TotalInvoices     int64 `json:"total_invoices"`
	PendingInvoices   int64 `json:"pending_invoices"`
	PaidInvoices      int64 `json:"paid_invoices"`
	CancelledInvoices int64 `json:"cancelled_invoices"`
	VehiclesSold      int64 `json:"vehicles_sold"`
	RevenueCents      int64 `json:"-"` // Stored in cents, excluded from JSON
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (d DashboardStats) MarshalJSON() ([]byte, error) {
	type Alias DashboardStats
	return json.Marshal(&struct {
		Alias
		Revenue float64 `json:"revenue"`
	}{
		Alias:   Alias(d),
		Revenue: float64(d.RevenueCents) / 100,
	})
}

// GetStats returns the dashboard overview
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats, err := s.invoiceRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalInvoices:     stats.TotalInvoices,
		PendingInvoices:   stats.PendingInvoices,
		PaidInvoices:      stats.PaidInvoices,
		CancelledInvoices: stats.CancelledInvoices,
		VehiclesSold:      stats.VehiclesSold,
		RevenueCents:      stats.RevenueCents,
	}, nil
}
