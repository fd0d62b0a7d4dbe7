package pgsql

import (
	portsrepo "github.com/rovema/comercial-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		VisitRepo:     newPgxVisitRepository(dbPool),
		QuotaRepo:     newPgxQuotaRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
