package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a customer account. Customers are never deleted;
// records are only created, re-saved whole, or extended with visit logs.
type Customer struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name           string            `gorm:"size:255;not null" json:"name"`
	Location       string            `gorm:"size:255" json:"location"`
	Address        *string           `gorm:"type:text" json:"address,omitempty"`
	Phone          string            `gorm:"size:50" json:"phone"`
	ContactPerson  string            `gorm:"size:255" json:"contact_person"`
	Designation    *string           `gorm:"size:255" json:"designation,omitempty"`
	Email          *string           `gorm:"size:255" json:"email,omitempty"`
	AlternatePhone *string           `gorm:"size:50" json:"alternate_phone,omitempty"`
	CustomerType   enum.CustomerType `gorm:"default:0" json:"customer_type"`
	InterestType   enum.InterestType `gorm:"default:0" json:"interest_type"`
	MessageConsent bool              `gorm:"default:false" json:"message_consent"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	// Relationships
	Visits     []VisitLog  `gorm:"foreignKey:CustomerID" json:"visits,omitempty"`
	Quotations []Quotation `gorm:"foreignKey:CustomerID" json:"-"`
	Invoices   []Invoice   `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// VisitLog is one entry of a customer's append-only visit history.
type VisitLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	UserName       string    `gorm:"size:255" json:"user_name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Notes          string    `gorm:"type:text" json:"notes"`
	MeetingMinutes *string   `gorm:"type:text" json:"meeting_minutes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new visit log
func (v *VisitLog) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VisitLog model
func (VisitLog) TableName() string {
	return "visit_logs"
}
