package domain

// Role represents the access role of an authenticated user
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Principal represents an authenticated end user resolved by the identity service.
// The booking core never mutates it.
type Principal struct {
	ID    int64
	Name  string
	Email string
	Role  Role
}

// IsAdmin returns true if the principal has administrative access
func (p *Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
