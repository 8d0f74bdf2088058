package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice is an immutable financial snapshot derived exactly once from a
// completed quotation. Line items and totals are copied verbatim at
// derivation time and never recomputed, even if the source quotation is
// later unlocked and edited.
type Invoice struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SerialNumber string             `gorm:"size:100;not null;index" json:"serial_number"`
	QuotationID  uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"quotation_id"`
	CustomerID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	BuyerNTN     string             `gorm:"size:50;column:buyer_ntn" json:"buyer_ntn"`
	DueDate      time.Time          `gorm:"not null" json:"due_date"`
	TaxType      enum.TaxType       `gorm:"default:0" json:"tax_type"`
	TaxRate      float64            `gorm:"type:decimal(5,4);default:0" json:"tax_rate"`
	TaxAmount    float64            `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	GrandTotal   float64            `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	Status       enum.InvoiceStatus `gorm:"default:0" json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`

	// Relationships
	Quotation *Quotation    `gorm:"foreignKey:QuotationID" json:"-"`
	Customer  *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	LineItems []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"line_items,omitempty"`
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

// InvoiceItem is a frozen copy of a quotation line item. Unlike LineItem
// there is no recompute hook: the stored figures are the snapshot.
type InvoiceItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID  `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID *uuid.UUID `gorm:"type:uuid" json:"product_id,omitempty"`
	Name      string     `gorm:"size:255" json:"name"`
	UOM       string     `gorm:"size:50;column:uom" json:"uom"`
	Quantity  float64    `gorm:"type:decimal(15,3);not null" json:"quantity"`
	UnitPrice float64    `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Subtotal  float64    `gorm:"type:decimal(15,2);not null" json:"subtotal"`
	CreatedAt time.Time  `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
