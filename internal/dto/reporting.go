package dto

import "github.com/rovema/comercial-backend/internal/core/domain"

// ReportVisitsParams defines query parameters for the manager visit query.
// Status accepts a comma-separated list of status values.
type ReportVisitsParams struct {
	Status       string `form:"status"`
	Collaborator string `form:"collaborator"`
	Window       string `form:"window,default=all"`
}

// SummaryParams defines query parameters for the dashboard summary.
type SummaryParams struct {
	Window string `form:"window,default=all"`
	TopN   int    `form:"topN,default=5"`
}

// SummaryResponse is the manager dashboard aggregate view.
type SummaryResponse struct {
	Window           string                     `json:"window"`
	TotalVisits      int                        `json:"totalVisits"`
	ByStatus         map[string]int             `json:"byStatus"`
	TopCollaborators []domain.CollaboratorCount `json:"topCollaborators"`
	MonthOverMonth   domain.MonthOverMonth      `json:"monthOverMonth"`
}

// ToSummaryResponse converts a domain summary for the given window.
func ToSummaryResponse(window domain.TimeWindow, summary *domain.ActivitySummary) SummaryResponse {
	byStatus := make(map[string]int, len(summary.ByStatus))
	total := 0
	for status, count := range summary.ByStatus {
		byStatus[string(status)] = count
		total += count
	}
	return SummaryResponse{
		Window:           string(window),
		TotalVisits:      total,
		ByStatus:         byStatus,
		TopCollaborators: summary.TopCollaborators,
		MonthOverMonth:   summary.MonthOverMonth,
	}
}
