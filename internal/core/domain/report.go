package domain

import "time"

// VisitFilter narrows a reporting query. Empty fields leave that dimension
// unfiltered.
type VisitFilter struct {
	Statuses         []VisitStatus
	CollaboratorName string
	Range            TimeRange
}

// CollaboratorCount is one row of the top-performers ranking.
type CollaboratorCount struct {
	CollaboratorName string `json:"collaboratorName"`
	Count            int    `json:"count"`
}

// QuotaProgress is a collaborator's quota-vs-actual position for the current
// month. Fraction is clamped to [0,1] and is 0 when the target is 0.
type QuotaProgress struct {
	Completed int     `json:"completed"`
	Target    int     `json:"target"`
	Fraction  float64 `json:"fraction"`
}

// MonthOverMonth compares current-month visit volume against the previous
// calendar month.
type MonthOverMonth struct {
	CurrentMonthCount  int `json:"currentMonthCount"`
	PreviousMonthCount int `json:"previousMonthCount"`
	Delta              int `json:"delta"`
}

// ActivitySummary bundles the manager dashboard aggregates for one window.
type ActivitySummary struct {
	ByStatus         map[VisitStatus]int `json:"byStatus"`
	TopCollaborators []CollaboratorCount `json:"topCollaborators"`
	MonthOverMonth   MonthOverMonth      `json:"monthOverMonth"`
}

// AggregateByStatus counts records per status.
func AggregateByStatus(records []Visit) map[VisitStatus]int {
	counts := make(map[VisitStatus]int)
	for _, v := range records {
		counts[v.Status]++
	}
	return counts
}

// AggregateByCollaborator ranks collaborators by visit count, descending,
// truncated to topN. Ties keep the collaborator that appeared first in the
// input order. Fewer than topN distinct collaborators yields a shorter list,
// never a padded one.
func AggregateByCollaborator(records []Visit, topN int) []CollaboratorCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, v := range records {
		if _, seen := counts[v.CollaboratorName]; !seen {
			order = append(order, v.CollaboratorName)
		}
		counts[v.CollaboratorName]++
	}

	ranked := make([]CollaboratorCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, CollaboratorCount{CollaboratorName: name, Count: counts[name]})
	}
	// Stable insertion sort keeps first-seen order among equal counts.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Count > ranked[j-1].Count; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if topN >= 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// NewQuotaProgress computes quota progress from a completed count and a
// target, guarding the zero-target division.
func NewQuotaProgress(completed, target int) QuotaProgress {
	p := QuotaProgress{Completed: completed, Target: target}
	if target > 0 {
		p.Fraction = float64(completed) / float64(target)
		if p.Fraction > 1 {
			p.Fraction = 1
		}
	}
	return p
}

// MonthOverMonthDelta splits records into the current and previous calendar
// months relative to now and reports the volume change.
func MonthOverMonthDelta(records []Visit, now time.Time) MonthOverMonth {
	currentStart := MonthStart(now)
	prevStart, prevEnd := PreviousMonthRange(now)

	var report MonthOverMonth
	for _, v := range records {
		switch {
		case !v.CreatedAt.Before(currentStart) && !v.CreatedAt.After(now):
			report.CurrentMonthCount++
		case !v.CreatedAt.Before(prevStart) && v.CreatedAt.Before(prevEnd):
			report.PreviousMonthCount++
		}
	}
	report.Delta = report.CurrentMonthCount - report.PreviousMonthCount
	return report
}
