package repositories

import (
	"context"
	"time"

	"github.com/rovema/comercial-backend/internal/core/domain"
)

// ReportingRepository defines read-only queries used by the reporting engine.
type ReportingRepository interface {
	// FindVisits retrieves visit records matching the filter, newest first.
	FindVisits(ctx context.Context, filter domain.VisitFilter) ([]domain.Visit, error)

	// CountVisitsSince counts a collaborator's visits created at or after
	// since, used for quota progress.
	CountVisitsSince(ctx context.Context, email string, since time.Time) (int, error)
}
