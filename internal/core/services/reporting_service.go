package services

import (
	"context"
	"time"

	"github.com/rovema/comercial-backend/internal/core/domain"
	portsrepo "github.com/rovema/comercial-backend/internal/core/ports/repositories"
	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	quotaSvc      portssvc.QuotaSvcFacade
	now           func() time.Time
}

// NewReportingService creates the manager-facing reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, quotaSvc portssvc.QuotaSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		quotaSvc:      quotaSvc,
		now:           time.Now,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) QueryVisits(ctx context.Context, statusIn []domain.VisitStatus, collaboratorName string, window domain.TimeWindow) ([]domain.Visit, error) {
	filter := domain.VisitFilter{
		Statuses:         statusIn,
		CollaboratorName: collaboratorName,
		Range:            window.Resolve(s.now()),
	}
	return s.reportingRepo.FindVisits(ctx, filter)
}

func (s *reportingService) Summary(ctx context.Context, window domain.TimeWindow, topN int) (*domain.ActivitySummary, error) {
	now := s.now()

	windowed, err := s.reportingRepo.FindVisits(ctx, domain.VisitFilter{Range: window.Resolve(now)})
	if err != nil {
		return nil, err
	}

	// Month-over-month spans the previous month through now regardless of
	// the requested window; a "today" view still shows the monthly trend.
	prevStart, _ := domain.PreviousMonthRange(now)
	monthly, err := s.reportingRepo.FindVisits(ctx, domain.VisitFilter{
		Range: domain.TimeRange{Start: &prevStart, End: &now},
	})
	if err != nil {
		return nil, err
	}

	return &domain.ActivitySummary{
		ByStatus:         domain.AggregateByStatus(windowed),
		TopCollaborators: domain.AggregateByCollaborator(windowed, topN),
		MonthOverMonth:   domain.MonthOverMonthDelta(monthly, now),
	}, nil
}

func (s *reportingService) QuotaProgress(ctx context.Context, email string) (domain.QuotaProgress, error) {
	target, err := s.quotaSvc.GetTarget(ctx, email)
	if err != nil {
		return domain.QuotaProgress{}, err
	}

	completed, err := s.reportingRepo.CountVisitsSince(ctx, email, domain.MonthStart(s.now()))
	if err != nil {
		return domain.QuotaProgress{}, err
	}

	return domain.NewQuotaProgress(completed, target.MonthlyTarget), nil
}
