package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppSettings is the single global configuration row: company identity,
// the two tax rates, and the ordered catalog category list. CASH
// documents always carry a zero rate and have no field here.
type AppSettings struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName      string    `gorm:"size:255;not null" json:"company_name"`
	CompanyShortName string    `gorm:"size:50;not null" json:"company_short_name"`
	CompanyNTN       string    `gorm:"size:50;column:company_ntn" json:"company_ntn"`
	LogoURL          string    `gorm:"size:512" json:"logo_url"`
	GSTRate          float64   `gorm:"type:decimal(5,4);default:0;column:gst_rate" json:"gst_rate"`
	SRBRate          float64   `gorm:"type:decimal(5,4);default:0;column:srb_rate" json:"srb_rate"`
	Categories       []string  `gorm:"serializer:json" json:"categories"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *AppSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AppSettings model
func (AppSettings) TableName() string {
	return "app_settings"
}

// DefaultSettings returns the factory configuration used until an admin
// saves their own.
func DefaultSettings() *AppSettings {
	return &AppSettings{
		CompanyName:      "Structura Chemicals Private Limited",
		CompanyShortName: "SCPL",
		CompanyNTN:       "1234567-8",
		GSTRate:          0.18,
		SRBRate:          0.15,
		Categories: []string{
			"Admixture",
			"Curing",
			"Paints",
			"Grouts and adhesives",
			"Flooring",
			"water proofings",
			"Cementitious Flooring",
		},
	}
}
