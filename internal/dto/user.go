package dto

import (
	"github.com/rovema/comercial-backend/internal/core/domain"
)

// CreateUserRequest defines the data for creating an account (admin action).
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=collaborator admin"`
}

// UpdateUserRequest defines the data allowed for updating an account.
// Pointers differentiate omitted fields from zero-value fields; omitted
// fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role" binding:"omitempty,oneof=collaborator admin"`
	Active   *bool   `json:"active"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// ChangePasswordRequest defines the payload of a self-service password change.
type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// UserResponse is the API representation of an account.
type UserResponse struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// ListUsersResponse wraps the list of accounts.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// CollaboratorNamesResponse wraps the filter-dropdown name list.
type CollaboratorNamesResponse struct {
	Names []string `json:"names"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
		Active: user.Active,
	}
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	resp := ListUsersResponse{Users: make([]UserResponse, len(users))}
	for i := range users {
		resp.Users[i] = ToUserResponse(&users[i])
	}
	return resp
}
