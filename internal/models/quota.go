package models

// QuotaTarget is the database representation of a row in metas.
type QuotaTarget struct {
	Email         string `db:"email"`
	MonthlyTarget int    `db:"meta_mensal"`
}
