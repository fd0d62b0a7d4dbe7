package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rovema/comercial-backend/internal/apperrors"
	"github.com/rovema/comercial-backend/internal/core/domain"
	portsrepo "github.com/rovema/comercial-backend/internal/core/ports/repositories"
	"github.com/rovema/comercial-backend/internal/models"
)

type PgxQuotaRepository struct {
	BaseRepository
}

func newPgxQuotaRepository(db *pgxpool.Pool) portsrepo.QuotaRepository {
	return &PgxQuotaRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.QuotaRepository = (*PgxQuotaRepository)(nil)

func toModelQuotaTarget(d domain.QuotaTarget) models.QuotaTarget {
	return models.QuotaTarget{
		Email:         d.CollaboratorEmail,
		MonthlyTarget: d.MonthlyTarget,
	}
}

func toDomainQuotaTarget(m models.QuotaTarget) domain.QuotaTarget {
	return domain.QuotaTarget{
		CollaboratorEmail: m.Email,
		MonthlyTarget:     m.MonthlyTarget,
	}
}

func (r *PgxQuotaRepository) UpsertTarget(ctx context.Context, target domain.QuotaTarget) error {
	m := toModelQuotaTarget(target)
	query := `
        INSERT INTO metas (email, meta_mensal)
        VALUES ($1, $2)
        ON CONFLICT (email) DO UPDATE SET meta_mensal = EXCLUDED.meta_mensal;
    `
	_, err := r.Pool.Exec(ctx, query, m.Email, m.MonthlyTarget)
	if err != nil {
		return fmt.Errorf("failed to upsert quota target for %s: %w", target.CollaboratorEmail, err)
	}
	return nil
}

func (r *PgxQuotaRepository) FindTarget(ctx context.Context, email string) (*domain.QuotaTarget, error) {
	query := `SELECT email, meta_mensal FROM metas WHERE email = $1;`
	var m models.QuotaTarget
	err := r.Pool.QueryRow(ctx, query, email).Scan(&m.Email, &m.MonthlyTarget)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quota target for %s: %w", email, err)
	}
	target := toDomainQuotaTarget(m)
	return &target, nil
}

func (r *PgxQuotaRepository) FindTargets(ctx context.Context) (map[string]int, error) {
	rows, err := r.Pool.Query(ctx, `SELECT email, meta_mensal FROM metas;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query quota targets: %w", err)
	}
	defer rows.Close()

	targets := map[string]int{}
	for rows.Next() {
		var m models.QuotaTarget
		if err := rows.Scan(&m.Email, &m.MonthlyTarget); err != nil {
			return nil, fmt.Errorf("failed to scan quota target row: %w", err)
		}
		targets[m.Email] = m.MonthlyTarget
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating quota target rows: %w", rows.Err())
	}
	return targets, nil
}
