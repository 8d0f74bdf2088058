package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/application/service"
	"github.com/structurachem/scpl-api/internal/domain/enum"
)

// GetUserID extracts the authenticated user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	value, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// GetActor assembles the acting user from the authenticated context.
// Returns false when the request carries no valid identity.
func GetActor(c *gin.Context) (service.Actor, bool) {
	id := GetUserID(c)
	if id == nil {
		return service.Actor{}, false
	}

	name, _ := c.Get("user_name")
	role, _ := c.Get("user_role")

	actor := service.Actor{ID: *id, Role: enum.UserRoleViewer}
	if s, ok := name.(string); ok {
		actor.Name = s
	}
	if s, ok := role.(string); ok {
		actor.Role = enum.ParseUserRole(s)
	}
	return actor, true
}

// bindEnumQuery decodes a query value through the enum's JSON name form.
// Returns false for an empty or unrecognized value.
func bindEnumQuery(value string, target any) bool {
	if value == "" {
		return false
	}
	return json.Unmarshal([]byte(strconv.Quote(value)), target) == nil
}
