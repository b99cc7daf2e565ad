package domain

// Role represents a user role
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity represents a server-validated user identity attached to a
// connection. A nil identity means the connection is a guest.
type Identity struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the identity carries the administrator role
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
