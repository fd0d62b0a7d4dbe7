package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rovema/comercial-backend/internal/apperrors"
	"github.com/rovema/comercial-backend/internal/core/domain"
	portsrepo "github.com/rovema/comercial-backend/internal/core/ports/repositories"
	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
)

type quotaService struct {
	BaseService
	quotaRepo     portsrepo.QuotaRepository
	userRepo      portsrepo.UserReader
	reportingRepo portsrepo.ReportingRepository
	now           func() time.Time
}

// NewQuotaService creates the quota management service.
func NewQuotaService(quotaRepo portsrepo.QuotaRepository, userRepo portsrepo.UserReader, reportingRepo portsrepo.ReportingRepository) portssvc.QuotaSvcFacade {
	return &quotaService{
		quotaRepo:     quotaRepo,
		userRepo:      userRepo,
		reportingRepo: reportingRepo,
		now:           time.Now,
	}
}

var _ portssvc.QuotaSvcFacade = (*quotaService)(nil)

func (s *quotaService) SetTarget(ctx context.Context, email string, monthlyTarget int) (domain.QuotaTarget, error) {
	if email == "" {
		return domain.QuotaTarget{}, fmt.Errorf("%w: collaborator email required", apperrors.ErrValidation)
	}
	if monthlyTarget < 0 {
		return domain.QuotaTarget{}, fmt.Errorf("%w: monthly target cannot be negative", apperrors.ErrValidation)
	}

	target := domain.QuotaTarget{CollaboratorEmail: email, MonthlyTarget: monthlyTarget}
	if err := s.quotaRepo.UpsertTarget(ctx, target); err != nil {
		return domain.QuotaTarget{}, err
	}

	s.LogInfo(ctx, "Quota target set",
		slog.String("collaborator", email),
		slog.Int("monthly_target", monthlyTarget))
	return target, nil
}

func (s *quotaService) GetTarget(ctx context.Context, email string) (domain.QuotaTarget, error) {
	target, err := s.quotaRepo.FindTarget(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.QuotaTarget{CollaboratorEmail: email, MonthlyTarget: domain.DefaultMonthlyTarget}, nil
		}
		return domain.QuotaTarget{}, err
	}
	return *target, nil
}

func (s *quotaService) Overview(ctx context.Context) ([]domain.CollaboratorQuota, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, err
	}

	targets, err := s.quotaRepo.FindTargets(ctx)
	if err != nil {
		return nil, err
	}

	monthStart := domain.MonthStart(s.now())
	overview := make([]domain.CollaboratorQuota, 0, len(users))
	for _, user := range users {
		if user.Role != domain.RoleCollaborator || !user.Active {
			continue
		}

		target, ok := targets[user.Email]
		if !ok {
			target = domain.DefaultMonthlyTarget
		}

		completed, err := s.reportingRepo.CountVisitsSince(ctx, user.Email, monthStart)
		if err != nil {
			return nil, err
		}

		overview = append(overview, domain.CollaboratorQuota{
			CollaboratorEmail: user.Email,
			CollaboratorName:  user.Name,
			Progress:          domain.NewQuotaProgress(completed, target),
		})
	}
	return overview, nil
}
