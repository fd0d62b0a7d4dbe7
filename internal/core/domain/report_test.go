package domain_test

import (
	"testing"
	"time"

	"github.com/rovema/comercial-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func visitBy(name string, status domain.VisitStatus) domain.Visit {
	return domain.Visit{CollaboratorName: name, Status: status}
}

func TestAggregateByStatus(t *testing.T) {
	records := []domain.Visit{
		visitBy("Ana", domain.StatusSale),
		visitBy("Bruno", domain.StatusSale),
		visitBy("Ana", domain.StatusProspecting),
		visitBy("Carla", domain.StatusNotInformed),
	}

	counts := domain.AggregateByStatus(records)
	assert.Equal(t, 2, counts[domain.StatusSale])
	assert.Equal(t, 1, counts[domain.StatusProspecting])
	assert.Equal(t, 1, counts[domain.StatusNotInformed])
	assert.Equal(t, 0, counts[domain.StatusClientAbsent])
}

func TestAggregateByStatusEmpty(t *testing.T) {
	assert.Empty(t, domain.AggregateByStatus(nil))
}

func TestAggregateByCollaborator(t *testing.T) {
	records := []domain.Visit{
		visitBy("Ana", domain.StatusSale),
		visitBy("Bruno", domain.StatusSale),
		visitBy("Bruno", domain.StatusProspecting),
		visitBy("Carla", domain.StatusSale),
		visitBy("Bruno", domain.StatusOther),
		visitBy("Ana", domain.StatusSale),
	}

	ranked := domain.AggregateByCollaborator(records, 5)
	assert.Equal(t, []domain.CollaboratorCount{
		{CollaboratorName: "Bruno", Count: 3},
		{CollaboratorName: "Ana", Count: 2},
		{CollaboratorName: "Carla", Count: 1},
	}, ranked)
}

func TestAggregateByCollaboratorTiesKeepInputOrder(t *testing.T) {
	records := []domain.Visit{
		visitBy("Zeca", domain.StatusSale),
		visitBy("Ana", domain.StatusSale),
		visitBy("Zeca", domain.StatusSale),
		visitBy("Ana", domain.StatusSale),
	}

	ranked := domain.AggregateByCollaborator(records, 2)
	// Zeca appeared first in the input, so the tie resolves in his favour.
	assert.Equal(t, "Zeca", ranked[0].CollaboratorName)
	assert.Equal(t, "Ana", ranked[1].CollaboratorName)
}

func TestAggregateByCollaboratorTruncation(t *testing.T) {
	records := []domain.Visit{
		visitBy("Ana", domain.StatusSale),
		visitBy("Bruno", domain.StatusSale),
	}

	// Fewer distinct collaborators than topN: all returned, no padding.
	assert.Len(t, domain.AggregateByCollaborator(records, 5), 2)
	// More than topN: truncated.
	assert.Len(t, domain.AggregateByCollaborator(records, 1), 1)
}

func TestNewQuotaProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		target    int
		want      float64
	}{
		{"partial progress", 5, 20, 0.25},
		{"zero target yields zero fraction", 5, 0, 0},
		{"overachievement clamps to one", 30, 20, 1},
		{"exact target", 20, 20, 1},
		{"no visits", 0, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.NewQuotaProgress(tt.completed, tt.target)
			assert.Equal(t, tt.completed, p.Completed)
			assert.Equal(t, tt.target, p.Target)
			assert.InDelta(t, tt.want, p.Fraction, 1e-9)
		})
	}
}

func TestMonthOverMonthDelta(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.Local)
	at := func(t time.Time) domain.Visit { return domain.Visit{CreatedAt: t} }

	records := []domain.Visit{
		at(time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)),   // current, exactly at month start
		at(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)),  // current
		at(time.Date(2025, 2, 28, 23, 0, 0, 0, time.Local)), // previous
		at(time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)),   // previous, at its start
		at(time.Date(2025, 1, 31, 12, 0, 0, 0, time.Local)), // older, ignored
	}

	report := domain.MonthOverMonthDelta(records, now)
	assert.Equal(t, 2, report.CurrentMonthCount)
	assert.Equal(t, 2, report.PreviousMonthCount)
	assert.Equal(t, 0, report.Delta)
}
