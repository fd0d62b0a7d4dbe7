package services

import (
	"context"

	"github.com/rovema/comercial-backend/internal/core/domain"
)

// QuotaSvcFacade defines quota target management.
type QuotaSvcFacade interface {
	// SetTarget upserts a collaborator's monthly target. Last write wins on
	// concurrent edits.
	SetTarget(ctx context.Context, email string, monthlyTarget int) (domain.QuotaTarget, error)

	// GetTarget retrieves a collaborator's target, falling back to the
	// default display value when none is stored.
	GetTarget(ctx context.Context, email string) (domain.QuotaTarget, error)

	// Overview lists every active collaborator with target and progress.
	Overview(ctx context.Context) ([]domain.CollaboratorQuota, error)
}
