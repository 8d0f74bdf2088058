package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents an operator account. Roles are a single flat enum; only
// Admin carries elevated authority.
type User struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeNo string        `gorm:"size:50;unique" json:"employee_no"`
	Name       string        `gorm:"size:255;not null" json:"name"`
	Email      string        `gorm:"size:255;unique;not null" json:"email"`
	Password   string        `gorm:"size:255" json:"-"`
	Role       enum.UserRole `gorm:"default:4" json:"role"`
	Avatar     *string       `gorm:"size:512" json:"avatar,omitempty"`
	Seeded     bool          `gorm:"default:false" json:"-"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds administrative authority.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
