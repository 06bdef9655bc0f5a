package user

import "time"

type Role string

const (
	RoleAdmin    Role = "Admin"    // Full console access
	RoleManager  Role = "Manager"  // Console access, same surface as Admin
	RoleEmployee Role = "Employee" // Mobile client only
)

// ParseRole maps a stored role string onto the closed enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s), true
	}
	return "", false
}

// CanAccessConsole reports whether the role may use the admin console.
func (r Role) CanAccessConsole() bool {
	return r == RoleAdmin || r == RoleManager
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	EmployeeID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
