package pgsql

import (
	"testing"
	"time"

	"github.com/rovema/comercial-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildVisitFilterQuery_NoFilters(t *testing.T) {
	query, args := buildVisitFilterQuery(domain.VisitFilter{})

	assert.Equal(t, `SELECT `+visitColumns+` FROM atendimentos WHERE 1=1 ORDER BY data_hora DESC`, query)
	assert.Empty(t, args)
}

func TestBuildVisitFilterQuery_StatusList(t *testing.T) {
	filter := domain.VisitFilter{
		Statuses: []domain.VisitStatus{domain.StatusSale, domain.StatusProspecting},
	}

	query, args := buildVisitFilterQuery(filter)

	assert.Contains(t, query, " AND status = ANY($1)")
	assert.NotContains(t, query, "status IS NULL")
	assert.Equal(t, []any{[]string{"SALE", "PROSPECTING"}}, args)
}

func TestBuildVisitFilterQuery_NotInformedMatchesLegacyRows(t *testing.T) {
	filter := domain.VisitFilter{
		Statuses: []domain.VisitStatus{domain.StatusNotInformed},
	}

	query, args := buildVisitFilterQuery(filter)

	// Legacy rows carry NULL or '' in the status column; the literal value is
	// never stored, so the clause must target the column state instead.
	assert.Contains(t, query, " AND (status IS NULL OR status = '')")
	assert.NotContains(t, query, "ANY")
	assert.Empty(t, args)
}

func TestBuildVisitFilterQuery_NotInformedMixedWithConcreteStatuses(t *testing.T) {
	filter := domain.VisitFilter{
		Statuses: []domain.VisitStatus{domain.StatusSale, domain.StatusNotInformed},
	}

	query, args := buildVisitFilterQuery(filter)

	assert.Contains(t, query, " AND (status = ANY($1) OR status IS NULL OR status = '')")
	assert.Equal(t, []any{[]string{"SALE"}}, args)
}

func TestBuildVisitFilterQuery_ArgNumberingAfterLegacyStatus(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.Local)
	filter := domain.VisitFilter{
		Statuses:         []domain.VisitStatus{domain.StatusNotInformed},
		CollaboratorName: "Joao Silva",
		Range:            domain.TimeRange{Start: &start, End: &end},
	}

	query, args := buildVisitFilterQuery(filter)

	// The legacy-only status clause consumes no placeholder, so the remaining
	// conditions must start at $1.
	assert.Contains(t, query, " AND colaborador_nome = $1")
	assert.Contains(t, query, " AND data_hora >= $2")
	assert.Contains(t, query, " AND data_hora <= $3")
	assert.Equal(t, []any{"Joao Silva", start, end}, args)
}
