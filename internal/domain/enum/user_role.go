package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// UserRole represents a user's role. Roles are a flat list; only Admin
// carries elevated authority (unlocking archived quotations, settings,
// user management).
type UserRole int

const (
	UserRoleAdmin      UserRole = 0
	UserRoleSales      UserRole = 1
	UserRoleTechnical  UserRole = 2
	UserRoleCommercial UserRole = 3
	UserRoleViewer     UserRole = 4
)

var userRoleNames = [...]string{"Admin", "Sales", "Technical", "Commercial", "Viewer"}

func (r UserRole) String() string {
	if int(r) < 0 || int(r) >= len(userRoleNames) {
		return "Viewer"
	}
	return userRoleNames[r]
}

// IsAdmin reports whether the role carries administrative authority.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*r = UserRole(i)
		return nil
	}
	for i, name := range userRoleNames {
		if name == str {
			*r = UserRole(i)
			return nil
		}
	}
	return nil
}

// ParseUserRole maps a role name to its UserRole value. Unknown names
// fall back to Viewer, the least privileged role.
func ParseUserRole(s string) UserRole {
	for i, name := range userRoleNames {
		if name == s {
			return UserRole(i)
		}
	}
	return UserRoleViewer
}

func (r UserRole) Value() (driver.Value, error) {
	return int64(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	if value == nil {
		*r = UserRoleViewer
		return nil
	}
	switch v := value.(type) {
	case int64:
		*r = UserRole(v)
	case int:
		*r = UserRole(v)
	}
	return nil
}
