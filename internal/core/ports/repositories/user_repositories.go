package repositories

import (
	"context"

	"github.com/rovema/comercial-backend/internal/core/domain"
)

// UserReader defines read operations for user accounts.
type UserReader interface {
	// FindUserByEmail retrieves an account by its unique email, regardless
	// of the active flag. Returns apperrors.ErrNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves all accounts ordered by name.
	FindUsers(ctx context.Context) ([]domain.User, error)

	// FindCollaboratorNames retrieves the distinct names of active
	// collaborator accounts, sorted, for filter dropdowns.
	FindCollaboratorNames(ctx context.Context) ([]string, error)
}

// UserWriter defines write operations for user accounts.
type UserWriter interface {
	// SaveUser persists a new account. Returns apperrors.ErrDuplicate when
	// the email is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser overwrites name, role, active flag and password hash of an
	// existing account. Partial-update merging happens in the service.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
