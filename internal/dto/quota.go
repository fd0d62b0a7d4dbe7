package dto

import "github.com/rovema/comercial-backend/internal/core/domain"

// SetQuotaRequest carries a manager's quota upsert.
type SetQuotaRequest struct {
	MonthlyTarget *int `json:"monthlyTarget" binding:"required,min=0"`
}

// QuotaProgressResponse is a collaborator's quota position.
type QuotaProgressResponse struct {
	CollaboratorEmail string  `json:"collaboratorEmail"`
	Completed         int     `json:"completed"`
	Target            int     `json:"target"`
	Fraction          float64 `json:"fraction"`
}

// QuotaOverviewResponse wraps the manager's per-collaborator quota listing.
type QuotaOverviewResponse struct {
	Collaborators []CollaboratorQuotaResponse `json:"collaborators"`
}

// CollaboratorQuotaResponse is one overview row.
type CollaboratorQuotaResponse struct {
	CollaboratorEmail string  `json:"collaboratorEmail"`
	CollaboratorName  string  `json:"collaboratorName"`
	Completed         int     `json:"completed"`
	Target            int     `json:"target"`
	Fraction          float64 `json:"fraction"`
}

// ToQuotaProgressResponse converts domain quota progress for one email.
func ToQuotaProgressResponse(email string, p domain.QuotaProgress) QuotaProgressResponse {
	return QuotaProgressResponse{
		CollaboratorEmail: email,
		Completed:         p.Completed,
		Target:            p.Target,
		Fraction:          p.Fraction,
	}
}

// ToQuotaOverviewResponse converts the overview rows.
func ToQuotaOverviewResponse(rows []domain.CollaboratorQuota) QuotaOverviewResponse {
	resp := QuotaOverviewResponse{Collaborators: make([]CollaboratorQuotaResponse, len(rows))}
	for i, row := range rows {
		resp.Collaborators[i] = CollaboratorQuotaResponse{
			CollaboratorEmail: row.CollaboratorEmail,
			CollaboratorName:  row.CollaboratorName,
			Completed:         row.Progress.Completed,
			Target:            row.Progress.Target,
			Fraction:          row.Progress.Fraction,
		}
	}
	return resp
}
