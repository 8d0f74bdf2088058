package service

import (
	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/enum"
)

// Actor identifies the authenticated operator performing an operation.
// Services receive it explicitly rather than digging through context so
// authorization decisions are visible at the call site.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role enum.UserRole
}

// IsAdmin reports whether the actor holds administrative authority.
func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}
