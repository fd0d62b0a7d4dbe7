package dto

import (
	"time"

	"github.com/rovema/comercial-backend/internal/core/domain"
)

// followUpDateLayout is the wire format of follow-up dates.
const followUpDateLayout = "2006-01-02"

// CreateVisitRequest carries a new visit submission. The location fields are
// the raw sensor reading; acceptance is decided server-side by the GPS gate.
type CreateVisitRequest struct {
	ClientName     string   `json:"clientName" binding:"required"`
	Status         string   `json:"status" binding:"required,visitstatus"`
	FollowUpDate   *string  `json:"followUpDate" binding:"omitempty,datetime=2006-01-02"`
	Notes          string   `json:"notes" binding:"required"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	AccuracyMeters float64  `json:"accuracyMeters"`
}

// Fix assembles the raw GPS reading from the request.
func (r CreateVisitRequest) Fix() domain.GPSFix {
	return domain.GPSFix{
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		AccuracyMeters: r.AccuracyMeters,
	}
}

// ParsedFollowUpDate parses the optional follow-up date. Binding has already
// validated the layout, so a parse failure is treated as absence.
func (r CreateVisitRequest) ParsedFollowUpDate() *time.Time {
	if r.FollowUpDate == nil {
		return nil
	}
	d, err := time.ParseInLocation(followUpDateLayout, *r.FollowUpDate, time.Local)
	if err != nil {
		return nil
	}
	return &d
}

// ListVisitsParams defines query parameters for the collaborator history.
type ListVisitsParams struct {
	Window string `form:"window,default=all"`
	Limit  int    `form:"limit,default=15"`
}

// VisitResponse is the API representation of a visit record.
type VisitResponse struct {
	VisitID           string  `json:"visitID"`
	CollaboratorEmail string  `json:"collaboratorEmail"`
	CollaboratorName  string  `json:"collaboratorName"`
	ClientName        string  `json:"clientName"`
	Status            string  `json:"status"`
	FollowUpDate      *string `json:"followUpDate,omitempty"`
	Notes             string  `json:"notes"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	Address           string  `json:"address"`
	CreatedAt         string  `json:"createdAt"`
}

// ListVisitsResponse wraps a page of visit records.
type ListVisitsResponse struct {
	Visits []VisitResponse `json:"visits"`
}

// ClientNamesResponse wraps the duplicate-avoidance suggestion list.
type ClientNamesResponse struct {
	Clients []string `json:"clients"`
}

// ToVisitResponse converts a domain.Visit to its API representation.
func ToVisitResponse(v *domain.Visit) VisitResponse {
	resp := VisitResponse{
		VisitID:           v.VisitID,
		CollaboratorEmail: v.CollaboratorEmail,
		CollaboratorName:  v.CollaboratorName,
		ClientName:        v.ClientName,
		Status:            string(v.Status),
		Notes:             v.Notes,
		Latitude:          v.Latitude,
		Longitude:         v.Longitude,
		Address:           v.Address,
		CreatedAt:         v.CreatedAt.Format(time.RFC3339),
	}
	if v.FollowUpDate != nil {
		d := v.FollowUpDate.Format(followUpDateLayout)
		resp.FollowUpDate = &d
	}
	return resp
}

// ToListVisitsResponse converts a slice of domain.Visit to ListVisitsResponse.
func ToListVisitsResponse(visits []domain.Visit) ListVisitsResponse {
	resp := ListVisitsResponse{Visits: make([]VisitResponse, len(visits))}
	for i := range visits {
		resp.Visits[i] = ToVisitResponse(&visits[i])
	}
	return resp
}
