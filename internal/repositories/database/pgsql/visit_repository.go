package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rovema/comercial-backend/internal/apperrors"
	"github.com/rovema/comercial-backend/internal/core/domain"
	portsrepo "github.com/rovema/comercial-backend/internal/core/ports/repositories"
	"github.com/rovema/comercial-backend/internal/models"
)

// legacyAddressPlaceholder is shown for rows that predate address capture.
const legacyAddressPlaceholder = "Address not recorded"

type PgxVisitRepository struct {
	BaseRepository
}

func newPgxVisitRepository(db *pgxpool.Pool) portsrepo.VisitRepositoryFacade {
	return &PgxVisitRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.VisitRepositoryFacade = (*PgxVisitRepository)(nil)

func toModelVisit(d domain.Visit) models.Visit {
	m := models.Visit{
		VisitID:           d.VisitID,
		CollaboratorEmail: d.CollaboratorEmail,
		CollaboratorName:  d.CollaboratorName,
		ClientName:        d.ClientName,
		Status:            sql.NullString{String: string(d.Status), Valid: d.Status != ""},
		Notes:             d.Notes,
		Latitude:          d.Latitude,
		Longitude:         d.Longitude,
		Address:           sql.NullString{String: d.Address, Valid: d.Address != ""},
		CreatedAt:         d.CreatedAt,
	}
	if d.FollowUpDate != nil {
		m.FollowUpDate = sql.NullTime{Time: *d.FollowUpDate, Valid: true}
	}
	return m
}

// toDomainVisit resolves legacy-row defaults: a missing status reads as
// NOT_INFORMED and a missing address as a placeholder, so consumers never see
// the absence.
func toDomainVisit(m models.Visit) domain.Visit {
	d := domain.Visit{
		VisitID:           m.VisitID,
		CollaboratorEmail: m.CollaboratorEmail,
		CollaboratorName:  m.CollaboratorName,
		ClientName:        m.ClientName,
		Status:            domain.StatusNotInformed,
		Notes:             m.Notes,
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
		Address:           legacyAddressPlaceholder,
		CreatedAt:         m.CreatedAt,
	}
	if m.Status.Valid && m.Status.String != "" {
		d.Status = domain.VisitStatus(m.Status.String)
	}
	if m.Address.Valid && m.Address.String != "" {
		d.Address = m.Address.String
	}
	if m.FollowUpDate.Valid {
		t := m.FollowUpDate.Time
		d.FollowUpDate = &t
	}
	return d
}

const visitColumns = `visit_id, colaborador_email, colaborador_nome, cliente_nome, status, data_retorno, observacoes, latitude, longitude, endereco, data_hora`

func scanVisit(row pgx.Row) (models.Visit, error) {
	var m models.Visit
	err := row.Scan(
		&m.VisitID,
		&m.CollaboratorEmail,
		&m.CollaboratorName,
		&m.ClientName,
		&m.Status,
		&m.FollowUpDate,
		&m.Notes,
		&m.Latitude,
		&m.Longitude,
		&m.Address,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxVisitRepository) SaveVisit(ctx context.Context, visit domain.Visit) error {
	m := toModelVisit(visit)
	query := `
        INSERT INTO atendimentos (` + visitColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.VisitID,
		m.CollaboratorEmail,
		m.CollaboratorName,
		m.ClientName,
		m.Status,
		m.FollowUpDate,
		m.Notes,
		m.Latitude,
		m.Longitude,
		m.Address,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save visit: %w", err)
	}
	return nil
}

func (r *PgxVisitRepository) FindVisitByID(ctx context.Context, visitID string) (*domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM atendimentos WHERE visit_id = $1;`
	m, err := scanVisit(r.Pool.QueryRow(ctx, query, visitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find visit %s: %w", visitID, err)
	}
	d := toDomainVisit(m)
	return &d, nil
}

func (r *PgxVisitRepository) FindVisitsByCollaborator(ctx context.Context, email string, rng domain.TimeRange, limit int) ([]domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM atendimentos WHERE colaborador_email = $1`
	args := []any{email}
	if rng.Start != nil {
		args = append(args, *rng.Start)
		query += fmt.Sprintf(" AND data_hora >= $%d", len(args))
	}
	if rng.End != nil {
		args = append(args, *rng.End)
		query += fmt.Sprintf(" AND data_hora <= $%d", len(args))
	}
	query += " ORDER BY data_hora DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return r.queryVisits(ctx, query, args...)
}

func (r *PgxVisitRepository) FindDistinctClientNames(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT cliente_nome FROM atendimentos ORDER BY cliente_nome ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query client names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan client name: %w", err)
		}
		names = append(names, name)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client names: %w", rows.Err())
	}
	return names, nil
}

func (r *PgxVisitRepository) FindUpcomingFollowUps(ctx context.Context, email string, asOf time.Time) ([]domain.Visit, error) {
	query := `
        SELECT ` + visitColumns + `
        FROM atendimentos
        WHERE colaborador_email = $1
          AND status = $2
          AND data_retorno >= $3
        ORDER BY data_retorno ASC;
    `
	return r.queryVisits(ctx, query, email, string(domain.StatusFollowUpScheduled), asOf)
}

func (r *PgxVisitRepository) DeleteVisit(ctx context.Context, visitID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM atendimentos WHERE visit_id = $1;`, visitID)
	if err != nil {
		return fmt.Errorf("failed to delete visit %s: %w", visitID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("visit %s: %w", visitID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxVisitRepository) queryVisits(ctx context.Context, query string, args ...any) ([]domain.Visit, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	visits := []domain.Visit{}
	for rows.Next() {
		m, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit row: %w", err)
		}
		visits = append(visits, toDomainVisit(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating visit rows: %w", rows.Err())
	}
	return visits, nil
}
