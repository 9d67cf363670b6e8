package constants

import (
	"fmt"
	"strings"
)

// Roles carried in the "role" claim of access tokens
const (
	RoleAdmin = "admin"
)

// Role error templates
const (
	ErrOnlyAdminsCanAccess = "forbidden - only admins can access %s"
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped role slices
// ==========================
var (
	AdminRoles = []string{RoleAdmin}
)

// HasRole reports whether role is one of allowed, ignoring case.
func HasRole(role string, allowed []string) bool {
	role = strings.TrimSpace(role)
	for _, a := range allowed {
		if strings.EqualFold(a, role) {
			return true
		}
	}
	return false
}
