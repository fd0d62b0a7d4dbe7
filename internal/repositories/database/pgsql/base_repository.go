package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all repositories.
// The pool is process-wide, initialized once at startup and reused across
// every operation.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
