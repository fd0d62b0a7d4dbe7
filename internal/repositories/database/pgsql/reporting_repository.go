package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rovema/comercial-backend/internal/core/domain"
	portsrepo "github.com/rovema/comercial-backend/internal/core/ports/repositories"
)

// reportingRepository implements the read-only reporting queries. It reuses
// the visit row mapping so legacy-row defaults apply to report output too.
type reportingRepository struct {
	BaseRepository
	visits *PgxVisitRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
		visits:         &PgxVisitRepository{BaseRepository{Pool: db}},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) FindVisits(ctx context.Context, filter domain.VisitFilter) ([]domain.Visit, error) {
	query, args := buildVisitFilterQuery(filter)
	return r.visits.queryVisits(ctx, query, args...)
}

// buildVisitFilterQuery translates a VisitFilter into SQL. Legacy rows store
// their status as NULL or '' and surface as NOT_INFORMED on read, so a filter
// that asks for NOT_INFORMED must match those rows, not the literal value.
func buildVisitFilterQuery(filter domain.VisitFilter) (string, []any) {
	query := `SELECT ` + visitColumns + ` FROM atendimentos WHERE 1=1`
	args := []any{}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		matchLegacy := false
		for _, s := range filter.Statuses {
			if s == domain.StatusNotInformed {
				matchLegacy = true
				continue
			}
			statuses = append(statuses, string(s))
		}
		switch {
		case matchLegacy && len(statuses) > 0:
			args = append(args, statuses)
			query += fmt.Sprintf(" AND (status = ANY($%d) OR status IS NULL OR status = '')", len(args))
		case matchLegacy:
			query += " AND (status IS NULL OR status = '')"
		default:
			args = append(args, statuses)
			query += fmt.Sprintf(" AND status = ANY($%d)", len(args))
		}
	}
	if filter.CollaboratorName != "" {
		args = append(args, filter.CollaboratorName)
		query += fmt.Sprintf(" AND colaborador_nome = $%d", len(args))
	}
	if filter.Range.Start != nil {
		args = append(args, *filter.Range.Start)
		query += fmt.Sprintf(" AND data_hora >= $%d", len(args))
	}
	if filter.Range.End != nil {
		args = append(args, *filter.Range.End)
		query += fmt.Sprintf(" AND data_hora <= $%d", len(args))
	}
	query += " ORDER BY data_hora DESC"

	return query, args
}

func (r *reportingRepository) CountVisitsSince(ctx context.Context, email string, since time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM atendimentos
        WHERE colaborador_email = $1 AND data_hora >= $2;
    `
	var count int
	if err := r.Pool.QueryRow(ctx, query, email, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count visits for %s: %w", email, err)
	}
	return count, nil
}
