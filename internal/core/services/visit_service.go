package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rovema/comercial-backend/internal/apperrors"
	"github.com/rovema/comercial-backend/internal/core/domain"
	portsrepo "github.com/rovema/comercial-backend/internal/core/ports/repositories"
	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
	"github.com/rovema/comercial-backend/internal/dto"
)

type visitService struct {
	BaseService
	visitRepo     portsrepo.VisitRepositoryFacade
	geocoder      portssvc.GeocoderSvc
	accuracyLimit float64
	now           func() time.Time
}

// VisitServiceOption is a functional option for configuring the visit service.
type VisitServiceOption func(*visitService)

// WithAccuracyLimit overrides the GPS acceptance threshold in meters.
func WithAccuracyLimit(meters float64) VisitServiceOption {
	return func(s *visitService) {
		s.accuracyLimit = meters
	}
}

// WithClock overrides the service clock.
func WithClock(now func() time.Time) VisitServiceOption {
	return func(s *visitService) {
		s.now = now
	}
}

// NewVisitService creates the visit ledger service.
func NewVisitService(visitRepo portsrepo.VisitRepositoryFacade, geocoder portssvc.GeocoderSvc, options ...VisitServiceOption) portssvc.VisitSvcFacade {
	svc := &visitService{
		visitRepo:     visitRepo,
		geocoder:      geocoder,
		accuracyLimit: domain.DefaultAccuracyLimitMeters,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.VisitSvcFacade = (*visitService)(nil)

func (s *visitService) RecordVisit(ctx context.Context, auth domain.AuthContext, req dto.CreateVisitRequest) (*domain.Visit, error) {
	clientName := strings.TrimSpace(req.ClientName)
	if clientName == "" {
		return nil, fmt.Errorf("%w: client name required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Notes) == "" {
		return nil, fmt.Errorf("%w: notes required", apperrors.ErrValidation)
	}

	status := domain.VisitStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, req.Status)
	}

	// Follow-up date travels only on scheduled follow-ups; any value supplied
	// alongside another status is discarded, never stored.
	followUp := req.ParsedFollowUpDate()
	if status == domain.StatusFollowUpScheduled {
		if followUp == nil {
			return nil, fmt.Errorf("%w: follow-up date required when scheduling a return", apperrors.ErrValidation)
		}
	} else {
		followUp = nil
	}

	accepted, err := req.Fix().Evaluate(s.accuracyLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	// Geocoding failure never blocks visit creation; the gateway degrades to
	// a placeholder on its own.
	address := s.geocoder.ReverseGeocode(ctx, accepted.Latitude, accepted.Longitude)

	visit := domain.Visit{
		VisitID:           uuid.NewString(),
		CollaboratorEmail: auth.Email,
		CollaboratorName:  auth.Name,
		ClientName:        clientName,
		Status:            status,
		FollowUpDate:      followUp,
		Notes:             req.Notes,
		Latitude:          accepted.Latitude,
		Longitude:         accepted.Longitude,
		Address:           address,
		CreatedAt:         s.now(),
	}
	if err := s.visitRepo.SaveVisit(ctx, visit); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Visit recorded",
		slog.String("visit_id", visit.VisitID),
		slog.String("client", clientName),
		slog.String("status", string(status)))
	return &visit, nil
}

func (s *visitService) ListMyVisits(ctx context.Context, auth domain.AuthContext, window domain.TimeWindow, limit int) ([]domain.Visit, error) {
	rng := window.Resolve(s.now())
	return s.visitRepo.FindVisitsByCollaborator(ctx, auth.Email, rng, limit)
}

func (s *visitService) ListClientNames(ctx context.Context) ([]string, error) {
	return s.visitRepo.FindDistinctClientNames(ctx)
}

func (s *visitService) DeleteVisit(ctx context.Context, auth domain.AuthContext, visitID string) error {
	visit, err := s.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		return err
	}
	if visit.CollaboratorEmail != auth.Email {
		s.LogWarn(ctx, "Refused delete of another collaborator's visit",
			slog.String("visit_id", visitID),
			slog.String("owner", visit.CollaboratorEmail))
		return apperrors.ErrNotOwner
	}
	if err := s.visitRepo.DeleteVisit(ctx, visitID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Visit deleted", slog.String("visit_id", visitID))
	return nil
}

func (s *visitService) ListUpcomingFollowUps(ctx context.Context, auth domain.AuthContext, asOf time.Time) ([]domain.Visit, error) {
	if asOf.IsZero() {
		asOf = domain.Midnight(s.now())
	}
	return s.visitRepo.FindUpcomingFollowUps(ctx, auth.Email, asOf)
}
