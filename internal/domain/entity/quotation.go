package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Quotation represents a sales or services proposal. While the status is
// Draft the financial fields are recomputed from current settings on every
// read; submission freezes them at the values computed at that instant.
type Quotation struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SerialNumber string             `gorm:"size:100;index" json:"serial_number"`
	Type         enum.QuotationType `gorm:"default:0" json:"type"`
	CustomerID   *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	BuyerNTN     string             `gorm:"size:50;column:buyer_ntn" json:"buyer_ntn"`
	PONumber     *string            `gorm:"size:100;column:po_number" json:"po_number,omitempty"`
	Subject      string             `gorm:"size:255" json:"subject"`

	CommercialOffer         string  `gorm:"type:text" json:"commercial_offer"`
	Terms                   string  `gorm:"type:text" json:"terms"`
	ScopeOfWork             *string `gorm:"type:text" json:"scope_of_work,omitempty"`
	TechnicalData           *string `gorm:"type:text" json:"technical_data,omitempty"`
	ClientResponsibilities  *string `gorm:"type:text" json:"client_responsibilities,omitempty"`
	CompanyResponsibilities *string `gorm:"type:text" json:"company_responsibilities,omitempty"`

	TaxType    enum.TaxType        `gorm:"default:0" json:"tax_type"`
	TaxRate    float64             `gorm:"type:decimal(5,4);default:0" json:"tax_rate"`
	TaxAmount  float64             `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	GrandTotal float64             `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	Status     enum.WorkflowStatus `gorm:"default:0" json:"status"`

	TechnicalSignature  *Signature `gorm:"serializer:json" json:"technical_signature,omitempty"`
	CommercialSignature *Signature `gorm:"serializer:json" json:"commercial_signature,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Customer  *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	LineItems []LineItem  `gorm:"foreignKey:QuotationID" json:"line_items,omitempty"`
	Logs      []StatusLog `gorm:"foreignKey:QuotationID" json:"logs,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// IsLocked reports whether the quotation is read-only to non-admin roles.
func (q *Quotation) IsLocked() bool {
	return q.Status.IsLocked()
}

// IsEditableBy reports whether the given role may mutate this quotation.
// Drafts are editable by anyone authorized; locked quotations only by an
// admin after an explicit unlock.
func (q *Quotation) IsEditableBy(role enum.UserRole) bool {
	return !q.IsLocked() || role.IsAdmin()
}

// CanEditLinePrice reports whether the given role may change a line item's
// unit price. Service quotations are always negotiable; for product sales
// the price is catalog-derived and only an admin may override it.
func (q *Quotation) CanEditLinePrice(role enum.UserRole) bool {
	if !q.IsEditableBy(role) {
		return false
	}
	if q.Type == enum.QuotationTypeServices {
		return true
	}
	return role.IsAdmin()
}

// LineItem is one priced entry within a quotation. Subtotal is derived:
// it always equals Quantity * UnitPrice and is recomputed on every
// mutation, never set independently.
type LineItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"quotation_id"`
	ProductID   *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Name        string     `gorm:"size:255" json:"name"`
	UOM         string     `gorm:"size:50;column:uom" json:"uom"`
	Quantity    float64    `gorm:"type:decimal(15,3);not null" json:"quantity"`
	UnitPrice   float64    `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Subtotal    float64    `gorm:"type:decimal(15,2);not null" json:"subtotal"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Recalculate restores the subtotal invariant after a field update.
func (li *LineItem) Recalculate() {
	li.Subtotal = li.Quantity * li.UnitPrice
}

// BeforeSave recomputes the subtotal so a drifted value can never be
// persisted.
func (li *LineItem) BeforeSave(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	li.Recalculate()
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}

// StatusLog is one entry of a quotation's append-only workflow audit trail.
type StatusLog struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID uuid.UUID           `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Status      enum.WorkflowStatus `gorm:"not null" json:"status"`
	UserName    string              `gorm:"size:255" json:"user"`
	Remarks     *string             `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt   time.Time           `json:"timestamp"`
}

// BeforeCreate generates a UUID before creating a new status log entry
func (l *StatusLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StatusLog model
func (StatusLog) TableName() string {
	return "status_logs"
}

// Signature is a signing block on a finalized document.
type Signature struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Date        string `json:"date"`
}
