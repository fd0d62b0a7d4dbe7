package repositories

import (
	"context"
	"time"

	"github.com/rovema/comercial-backend/internal/core/domain"
)

// VisitReader defines read operations for visit records.
type VisitReader interface {
	// FindVisitByID retrieves a single visit record.
	FindVisitByID(ctx context.Context, visitID string) (*domain.Visit, error)

	// FindVisitsByCollaborator retrieves a collaborator's visits inside the
	// range, newest first, truncated to limit when limit > 0.
	FindVisitsByCollaborator(ctx context.Context, email string, rng domain.TimeRange, limit int) ([]domain.Visit, error)

	// FindDistinctClientNames retrieves every distinct client name, sorted.
	FindDistinctClientNames(ctx context.Context) ([]string, error)

	// FindUpcomingFollowUps retrieves FOLLOW_UP_SCHEDULED visits for the
	// collaborator with a follow-up date at or after asOf, ascending by date.
	FindUpcomingFollowUps(ctx context.Context, email string, asOf time.Time) ([]domain.Visit, error)
}

// VisitWriter defines write operations for visit records. Records are
// append-only; there is no update.
type VisitWriter interface {
	// SaveVisit persists a new visit record.
	SaveVisit(ctx context.Context, visit domain.Visit) error

	// DeleteVisit removes a visit record. Returns apperrors.ErrNotFound when
	// no row matches.
	DeleteVisit(ctx context.Context, visitID string) error
}

// VisitRepositoryFacade combines all visit-related repository interfaces.
type VisitRepositoryFacade interface {
	VisitReader
	VisitWriter
}
