package services

import (
	"context"

	"github.com/rovema/comercial-backend/internal/core/domain"
	"github.com/rovema/comercial-backend/internal/dto"
)

// UserReaderSvc defines read operations for user accounts.
type UserReaderSvc interface {
	// GetUserByEmail retrieves an account by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves all accounts ordered by name.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListCollaboratorNames retrieves distinct active collaborator names.
	ListCollaboratorNames(ctx context.Context) ([]string, error)
}

// UserWriterSvc defines write operations for user accounts.
type UserWriterSvc interface {
	// CreateUser creates a new account. Admin only.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, auth domain.AuthContext) (*domain.User, error)

	// UpdateUser applies a partial update to an account. Admin only.
	// The bootstrap admin can never be deactivated.
	UpdateUser(ctx context.Context, email string, req dto.UpdateUserRequest, auth domain.AuthContext) (*domain.User, error)

	// SetPassword replaces an account's password. Permitted for the account
	// owner and for admins.
	SetPassword(ctx context.Context, email string, newPassword string, auth domain.AuthContext) error
}

// UserAuthSvc defines authentication operations.
type UserAuthSvc interface {
	// Authenticate verifies credentials against an active account.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// EnsureBootstrapAdmin idempotently seeds the fixed admin account.
	// Called once at process start.
	EnsureBootstrapAdmin(ctx context.Context) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
