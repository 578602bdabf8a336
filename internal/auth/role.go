package auth

import "fmt"

// Role is the closed set of account roles. Any other value is rejected at
// the boundary where claims are decoded.
type Role string

const (
	RoleGeneral     Role = "general"
	RoleStudent     Role = "student"
	RoleInstitution Role = "institution"
	RoleAdmin       Role = "admin"
)

// ParseRole normalizes a raw claim value into a Role.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleGeneral, RoleStudent, RoleInstitution, RoleAdmin:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Satisfies reports whether the role meets a requirement. Admin satisfies
// every requirement; all other roles satisfy only an exact match.
func (r Role) Satisfies(required Role) bool {
	return r == required || r == RoleAdmin
}
