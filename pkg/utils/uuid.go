package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateEmployeeNo generates an employee reference for a new user
func GenerateEmployeeNo(companyShort string, sequence int) string {
	return fmt.Sprintf("%s-EMP-%03d", companyShort, sequence)
}
