package services

import (
	"context"
	"time"

	"github.com/rovema/comercial-backend/internal/core/domain"
	"github.com/rovema/comercial-backend/internal/dto"
)

// VisitSvcFacade defines the visit ledger operations. Every method takes the
// caller's AuthContext explicitly; the ledger holds no ambient session state.
type VisitSvcFacade interface {
	// RecordVisit validates and persists a new visit record. The GPS reading
	// must pass the acceptance gate; the address is enriched via the
	// geocoding gateway and createdAt is stamped server-side.
	RecordVisit(ctx context.Context, auth domain.AuthContext, req dto.CreateVisitRequest) (*domain.Visit, error)

	// ListMyVisits retrieves the caller's visits in the window, newest first.
	ListMyVisits(ctx context.Context, auth domain.AuthContext, window domain.TimeWindow, limit int) ([]domain.Visit, error)

	// ListClientNames retrieves distinct client names for entry suggestions.
	ListClientNames(ctx context.Context) ([]string, error)

	// DeleteVisit removes one of the caller's own visit records. Returns
	// apperrors.ErrNotOwner when the record belongs to someone else.
	DeleteVisit(ctx context.Context, auth domain.AuthContext, visitID string) error

	// ListUpcomingFollowUps retrieves the caller's agenda: scheduled
	// follow-ups at or after asOf, ascending by follow-up date.
	ListUpcomingFollowUps(ctx context.Context, auth domain.AuthContext, asOf time.Time) ([]domain.Visit, error)
}
