package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog product
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Category    string    `gorm:"size:255;default:'General'" json:"category"`
	UOM         string    `gorm:"size:50;default:'Units';column:uom" json:"uom"`
	Packaging   string    `gorm:"size:255;default:'Standard'" json:"packaging"`
	BasePrice   float64   `gorm:"type:decimal(15,2);default:0" json:"base_price"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// NormalizeProductName produces the key used for bulk-import identity
// resolution: product names match case- and whitespace-insensitively.
func NormalizeProductName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
