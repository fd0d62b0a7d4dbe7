package repositories

import (
	"context"

	"github.com/rovema/comercial-backend/internal/core/domain"
)

// QuotaRepository defines operations on monthly quota targets.
type QuotaRepository interface {
	// UpsertTarget creates or overwrites the target for a collaborator.
	// Concurrent writes are last-write-wins.
	UpsertTarget(ctx context.Context, target domain.QuotaTarget) error

	// FindTarget retrieves the stored target for a collaborator. Returns
	// apperrors.ErrNotFound when no target was ever set.
	FindTarget(ctx context.Context, email string) (*domain.QuotaTarget, error)

	// FindTargets retrieves all stored targets keyed by collaborator email.
	FindTargets(ctx context.Context) (map[string]int, error)
}
