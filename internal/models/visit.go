package models

import (
	"database/sql"
	"time"
)

// Visit is the database representation of a row in atendimentos. Status and
// Address are nullable because rows written by early iterations of the
// system may lack them; defaults are applied at the read boundary.
type Visit struct {
	VisitID           string         `db:"visit_id"`
	CollaboratorEmail string         `db:"colaborador_email"`
	CollaboratorName  string         `db:"colaborador_nome"`
	ClientName        string         `db:"cliente_nome"`
	Status            sql.NullString `db:"status"`
	FollowUpDate      sql.NullTime   `db:"data_retorno"`
	Notes             string         `db:"observacoes"`
	Latitude          float64        `db:"latitude"`
	Longitude         float64        `db:"longitude"`
	Address           sql.NullString `db:"endereco"`
	CreatedAt         time.Time      `db:"data_hora"`
}
