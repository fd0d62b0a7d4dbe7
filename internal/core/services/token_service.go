package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rovema/comercial-backend/internal/core/domain"
	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
	"github.com/rovema/comercial-backend/internal/platform/config"
	"github.com/rovema/comercial-backend/internal/utils"
)

type tokenService struct {
	BaseService
	secret string
	expiry time.Duration
	issuer string
	now    func() time.Time
}

// NewTokenService creates the access token issuer.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{
		secret: cfg.JWTSecret,
		expiry: cfg.JWTExpiryDuration,
		issuer: cfg.JWTIssuer,
		now:    time.Now,
	}
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := s.now().Add(s.expiry)
	token, err := utils.GenerateJWT(user, s.secret, s.expiry, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generating access token: %w", err)
	}
	return token, expiresAt, nil
}
