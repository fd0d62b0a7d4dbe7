package domain

import "time"

// UserRole distinguishes field collaborators from managing admins.
type UserRole string

const (
	RoleCollaborator UserRole = "collaborator"
	RoleAdmin        UserRole = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == RoleCollaborator || r == RoleAdmin
}

// User represents an account in the domain. Accounts are never hard-deleted;
// they are deactivated via Active=false instead.
type User struct {
	UserID       string    `json:"userID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}
