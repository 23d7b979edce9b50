package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/steelwheel/dealership-api/internal/domain/entity"
	"github.com/steelwheel/dealership-api/internal/domain/enum"
	"github.com/steelwheel/dealership-api/internal/domain/repository"
	"github.com/steelwheel/dealership-api/pkg/billing"
	"github.com/steelwheel/dealership-api/pkg/pagination"
)

type fakeCustomerRepo struct {
	byTRN   map[string]*entity.Customer
	updated []*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byTRN: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	f.byTRN[c.TRN] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	for _, c := range f.byTRN {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByTRN(ctx context.Context, trn string) (*entity.Customer, error) {
	return f.byTRN[trn], nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	f.updated = append(f.updated, c)
	f.byTRN[c.TRN] = c
	return nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, params *pagination.Params, search string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

type fakeInvoiceRepo struct {
	byNumber map[string]*entity.Invoice
	created  []*entity.Invoice
	statuses map[uuid.UUID]enum.InvoiceStatus
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		byNumber: make(map[string]*entity.Invoice),
		statuses: make(map[uuid.UUID]enum.InvoiceStatus),
	}
}

func (f *fakeInvoiceRepo) CreateWithCustomer(ctx context.Context, customer *entity.Customer, customerIsNew bool, invoice *entity.Invoice) error {
	if customerIsNew && customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	invoice.ID = uuid.New()
	invoice.CustomerID = customer.ID
	f.byNumber[invoice.InvoiceNo] = invoice
	f.created = append(f.created, invoice)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	for _, inv := range f.byNumber {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) GetByInvoiceNo(ctx context.Context, no string) (*entity.Invoice, error) {
	return f.byNumber[no], nil
}

func (f *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	f.statuses[id] = status
	for _, inv := range f.byNumber {
		if inv.ID == id {
			inv.Status = status
		}
	}
	return nil
}

func (f *fakeInvoiceRepo) UpdateEnrichment(ctx context.Context, id uuid.UUID, enrichment string) error {
	for _, inv := range f.byNumber {
		if inv.ID == id {
			inv.Enrichment = enrichment
		}
	}
	return nil
}

func (f *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	return nil, 0, nil
}

func (f *fakeInvoiceRepo) ListWithCursor(ctx context.Context, params *repository.InvoiceCursorFilterParams) ([]entity.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) Stats(ctx context.Context) (*repository.InvoiceStats, error) {
	return &repository.InvoiceStats{}, nil
}

func sampleCreateInput() *CreateInvoiceInput {
	return &CreateInvoiceInput{
		Customer: CustomerInput{
			FullName: "Andre Campbell",
			Email:    "andre@example.com",
			Phone:    "876-555-0123",
			TRN:      "123-456-789",
			Address:  "12 Hope Road, Kingston 6",
		},
		Vehicles: []VehicleInput{
			{Make: "Toyota", Model: "Land Cruiser", Year: 2022, VIN: "JT3HN86R0W0147395", Price: billing.Price(100000000)},
			{Make: "Honda", Model: "CR-V", Year: 2021, VIN: "2HKRW2H89MH600001", Price: billing.Price(50000000)},
		},
	}
}

func newTestInvoiceService(invoiceRepo *fakeInvoiceRepo, customerRepo *fakeCustomerRepo) *InvoiceService {
	svc := NewInvoiceService(invoiceRepo, customerRepo)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestCreateInvoiceTotals(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	svc := newTestInvoiceService(invoiceRepo, newFakeCustomerRepo())

	invoice, err := svc.Create(context.Background(), sampleCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if invoice.SubTotal != 150000000 {
		t.Errorf("SubTotal = %d, want 150000000", invoice.SubTotal)
	}
	if invoice.GCT != 22500000 {
		t.Errorf("GCT = %d, want 22500000", invoice.GCT)
	}
	if invoice.Total != 172500000 {
		t.Errorf("Total = %d, want 172500000", invoice.Total)
	}
	if invoice.SubTotal+invoice.GCT != invoice.Total {
		t.Error("subtotal plus GCT must equal total")
	}
	if invoice.Status != enum.InvoiceStatusPending {
		t.Errorf("Status = %v, want Pending", invoice.Status)
	}
}

func TestCreateInvoiceClampsNegativePrice(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	svc := newTestInvoiceService(invoiceRepo, newFakeCustomerRepo())

	input := sampleCreateInput()
	input.Vehicles[0].Price = -100000000

	invoice, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if invoice.Vehicles[0].Price != 0 {
		t.Errorf("Vehicles[0].Price = %d, want 0", invoice.Vehicles[0].Price)
	}
	if invoice.SubTotal != 50000000 {
		t.Errorf("SubTotal = %d, want 50000000", invoice.SubTotal)
	}
	if invoice.GCT != 7500000 {
		t.Errorf("GCT = %d, want 7500000", invoice.GCT)
	}
	if invoice.Total != 57500000 {
		t.Errorf("Total = %d, want 57500000", invoice.Total)
	}
}

func TestCreateInvoicePreservesVehicleOrder(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	svc := newTestInvoiceService(invoiceRepo, newFakeCustomerRepo())

	invoice, err := svc.Create(context.Background(), sampleCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(invoice.Vehicles) != 2 {
		t.Fatalf("len(Vehicles) = %d, want 2", len(invoice.Vehicles))
	}
	if invoice.Vehicles[0].Position != 0 || invoice.Vehicles[0].VIN != "JT3HN86R0W0147395" {
		t.Errorf("first vehicle out of order: %+v", invoice.Vehicles[0])
	}
	if invoice.Vehicles[1].Position != 1 || invoice.Vehicles[1].VIN != "2HKRW2H89MH600001" {
		t.Errorf("second vehicle out of order: %+v", invoice.Vehicles[1])
	}
}

func TestCreateInvoiceNumberFormat(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	svc := newTestInvoiceService(invoiceRepo, newFakeCustomerRepo())

	invoice, err := svc.Create(context.Background(), sampleCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !strings.HasPrefix(invoice.InvoiceNo, "INV-20260301-") {
		t.Errorf("InvoiceNo = %q, want INV-20260301-NNN", invoice.InvoiceNo)
	}
}

func TestCreateInvoiceRejectsEmptyVehicles(t *testing.T) {
	svc := newTestInvoiceService(newFakeInvoiceRepo(), newFakeCustomerRepo())

	input := sampleCreateInput()
	input.Vehicles = nil

	if _, err := svc.Create(context.Background(), input); err == nil {
		t.Fatal("expected error for empty vehicle list")
	}
}

func TestCreateInvoiceReusesCustomerByTRN(t *testing.T) {
	customerRepo := newFakeCustomerRepo()
	existing := &entity.Customer{
		ID:       uuid.New(),
		FullName: "A. Campbell",
		TRN:      "123-456-789",
		Email:    "old@example.com",
	}
	customerRepo.byTRN[existing.TRN] = existing

	invoiceRepo := newFakeInvoiceRepo()
	svc := newTestInvoiceService(invoiceRepo, customerRepo)

	invoice, err := svc.Create(context.Background(), sampleCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if invoice.CustomerID != existing.ID {
		t.Errorf("CustomerID = %v, want existing customer %v", invoice.CustomerID, existing.ID)
	}
	if len(customerRepo.updated) != 1 {
		t.Fatalf("expected one customer update, got %d", len(customerRepo.updated))
	}
	if customerRepo.updated[0].Email != "andre@example.com" {
		t.Errorf("contact details not refreshed: %q", customerRepo.updated[0].Email)
	}
}

func TestCreateInvoiceRerollsCollidingNumber(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	svc := newTestInvoiceService(invoiceRepo, newFakeCustomerRepo())

	// Occupy one number, then create repeatedly. Any draw that lands on
	// the occupied number must be re-rolled, so no returned invoice may
	// carry it.
	first, err := svc.Create(context.Background(), sampleCreateInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	taken := first.InvoiceNo
	for i := 0; i < 50; i++ {
		invoice, err := svc.Create(context.Background(), sampleCreateInput())
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
		if invoice.InvoiceNo == taken {
			t.Fatalf("collision with %q was not re-rolled", taken)
		}
		delete(invoiceRepo.byNumber, invoice.InvoiceNo)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    enum.InvoiceStatus
		to      enum.InvoiceStatus
		wantErr bool
	}{
		{"pending to paid", enum.InvoiceStatusPending, enum.InvoiceStatusPaid, false},
		{"pending to cancelled", enum.InvoiceStatusPending, enum.InvoiceStatusCancelled, false},
		{"paid is terminal", enum.InvoiceStatusPaid, enum.InvoiceStatusCancelled, true},
		{"cancelled is terminal", enum.InvoiceStatusCancelled, enum.InvoiceStatusPaid, true},
		{"pending to pending", enum.InvoiceStatusPending, enum.InvoiceStatusPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoiceRepo := newFakeInvoiceRepo()
			svc := newTestInvoiceService(invoiceRepo, newFakeCustomerRepo())

			invoice, err := svc.Create(context.Background(), sampleCreateInput())
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			invoice.Status = tt.from

			_, err = svc.UpdateStatus(context.Background(), invoice.ID, tt.to)
			if tt.wantErr && err == nil {
				t.Errorf("expected transition %v -> %v to fail", tt.from, tt.to)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("transition %v -> %v failed: %v", tt.from, tt.to, err)
			}
		})
	}
}

func TestUpdateStatusUnknownInvoice(t *testing.T) {
	svc := newTestInvoiceService(newFakeInvoiceRepo(), newFakeCustomerRepo())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), enum.InvoiceStatusPaid)
	if err == nil {
		t.Fatal("expected not found error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}
