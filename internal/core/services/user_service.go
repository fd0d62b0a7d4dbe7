package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rovema/comercial-backend/internal/apperrors"
	"github.com/rovema/comercial-backend/internal/core/domain"
	portsrepo "github.com/rovema/comercial-backend/internal/core/ports/repositories"
	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
	"github.com/rovema/comercial-backend/internal/dto"
	"github.com/rovema/comercial-backend/internal/platform/config"
	"github.com/rovema/comercial-backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade

	bootstrapEmail    string
	bootstrapName     string
	bootstrapPassword string

	now func() time.Time
}

// NewUserService creates the credential store service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.UserSvcFacade {
	return &userService{
		userRepo:          userRepo,
		bootstrapEmail:    cfg.BootstrapAdminEmail,
		bootstrapName:     cfg.BootstrapAdminName,
		bootstrapPassword: cfg.BootstrapAdminPassword,
		now:               time.Now,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if !user.Active {
		s.LogWarn(ctx, "Login attempt on inactive account", slog.String("email", email))
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) EnsureBootstrapAdmin(ctx context.Context) error {
	_, err := s.userRepo.FindUserByEmail(ctx, s.bootstrapEmail)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check bootstrap admin: %w", err)
	}

	password := s.bootstrapPassword
	if password == "" {
		password, err = utils.GenerateSecureRandomString(12)
		if err != nil {
			return fmt.Errorf("failed to generate bootstrap admin password: %w", err)
		}
		s.LogWarn(ctx, "Generated one-time bootstrap admin password",
			slog.String("email", s.bootstrapEmail),
			slog.String("password", password))
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	admin := domain.User{
		UserID:       uuid.NewString(),
		Name:         s.bootstrapName,
		Email:        s.bootstrapEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    s.now(),
	}
	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		// A concurrent process may have seeded it first; that satisfies the
		// invariant just as well.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to seed bootstrap admin: %w", err)
	}
	s.LogInfo(ctx, "Bootstrap admin account seeded", slog.String("email", s.bootstrapEmail))
	return nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, auth domain.AuthContext) (*domain.User, error) {
	if !auth.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    s.now(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("email", user.Email),
		slog.String("role", string(user.Role)),
		slog.String("created_by", auth.Email))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, email string, req dto.UpdateUserRequest, auth domain.AuthContext) (*domain.User, error) {
	if !auth.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		user.Role = role
	}
	if req.Active != nil {
		if !*req.Active && email == s.bootstrapEmail {
			return nil, fmt.Errorf("%w: the bootstrap admin cannot be deactivated", apperrors.ErrValidation)
		}
		user.Active = *req.Active
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Account updated", slog.String("email", email), slog.String("updated_by", auth.Email))
	return user, nil
}

func (s *userService) SetPassword(ctx context.Context, email string, newPassword string, auth domain.AuthContext) error {
	if auth.Email != email && !auth.IsAdmin() {
		return apperrors.ErrForbidden
	}
	if newPassword == "" {
		return fmt.Errorf("%w: password required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return err
	}
	s.LogInfo(ctx, "Password changed", slog.String("email", email), slog.String("changed_by", auth.Email))
	return nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx)
}

func (s *userService) ListCollaboratorNames(ctx context.Context) ([]string, error) {
	return s.userRepo.FindCollaboratorNames(ctx)
}
