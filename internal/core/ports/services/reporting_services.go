package services

import (
	"context"

	"github.com/rovema/comercial-backend/internal/core/domain"
)

// ReportingSvcFacade defines the manager-facing reporting queries.
type ReportingSvcFacade interface {
	// QueryVisits retrieves visits matching the filters, newest first. Time
	// windows are resolved against "now" at query time.
	QueryVisits(ctx context.Context, statusIn []domain.VisitStatus, collaboratorName string, window domain.TimeWindow) ([]domain.Visit, error)

	// Summary computes the dashboard aggregates for a window: counts by
	// status, top collaborators, and month-over-month volume.
	Summary(ctx context.Context, window domain.TimeWindow, topN int) (*domain.ActivitySummary, error)

	// QuotaProgress computes a collaborator's current-month progress against
	// their stored (or default) target.
	QuotaProgress(ctx context.Context, email string) (domain.QuotaProgress, error)
}
