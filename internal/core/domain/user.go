package domain

import "fmt"

// Role controls which pages and operations an account may use.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleTourist  Role = "tourist"
)

// ParseRole converts a raw string into a Role, rejecting anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleEmployee, RoleTourist:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleTourist
}

// User models an authenticated actor. The backend owns the record; the
// client never mutates a User in place, it replaces the whole value on
// login and drops it on logout.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Shaped reports whether a decoded record carries the fields a User must
// have. Used by the session store to detect corrupted persisted entries.
func (u *User) Shaped() bool {
	return u != nil && u.Username != "" && u.Role.Valid()
}
