package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/steelwheel/dealership-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice represents a vehicle sale invoice
type Invoice struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	InvoiceNo  string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	IssueDate  time.Time          `gorm:"type:date;not null" json:"issue_date"`
	Status     enum.InvoiceStatus `gorm:"default:0" json:"status"`
	SubTotal   int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	GCT        int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Enrichment string             `gorm:"type:text" json:"enrichment,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer Customer         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vehicles []InvoiceVehicle `gorm:"foreignKey:InvoiceID" json:"vehicles,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
		GCT      float64 `json:"gct"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(i),
		SubTotal: float64(i.SubTotal) / 100,
		GCT:      float64(i.GCT) / 100,
		Total:    float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceVehicle represents a vehicle line on an invoice. Position preserves
// the order the vehicles were submitted in.
type InvoiceVehicle struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Position  int            `gorm:"not null" json:"position"`
	Make      string         `gorm:"size:100;not null" json:"make"`
	Model     string         `gorm:"size:100;not null" json:"model"`
	Year      int            `gorm:"not null" json:"year"`
	VIN       string         `gorm:"size:50;not null;column:vin" json:"vin"`
	Color     string         `gorm:"size:50" json:"color,omitempty"`
	Mileage   *int           `json:"mileage,omitempty"`
	Price     int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (v InvoiceVehicle) MarshalJSON() ([]byte, error) {
	type Alias InvoiceVehicle
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(v),
		Price: float64(v.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new invoice vehicle
func (v *InvoiceVehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceVehicle model
func (InvoiceVehicle) TableName() string {
	return "invoice_vehicles"
}
