package domain

import "time"

// VisitStatus is the outcome recorded for a client visit. The status is fixed
// at creation time; records are never edited in place.
type VisitStatus string

const (
	StatusSale              VisitStatus = "SALE"
	StatusProspecting       VisitStatus = "PROSPECTING"
	StatusFollowUpScheduled VisitStatus = "FOLLOW_UP_SCHEDULED"
	StatusClientAbsent      VisitStatus = "CLIENT_ABSENT"
	StatusOther             VisitStatus = "OTHER"

	// StatusNotInformed is the read-boundary default for legacy rows that
	// predate the status field. It is not a valid status for new records.
	StatusNotInformed VisitStatus = "NOT_INFORMED"
)

// AllVisitStatuses lists the statuses a new visit may be created with.
var AllVisitStatuses = []VisitStatus{
	StatusSale,
	StatusProspecting,
	StatusFollowUpScheduled,
	StatusClientAbsent,
	StatusOther,
}

// IsValid reports whether the status is allowed on a new visit record.
func (s VisitStatus) IsValid() bool {
	switch s {
	case StatusSale, StatusProspecting, StatusFollowUpScheduled, StatusClientAbsent, StatusOther:
		return true
	}
	return false
}

// Visit is one logged client interaction. CollaboratorName is a snapshot of
// the collaborator's name at write time, kept for historical accuracy rather
// than resolved through a join.
type Visit struct {
	VisitID           string      `json:"visitID"`
	CollaboratorEmail string      `json:"collaboratorEmail"`
	CollaboratorName  string      `json:"collaboratorName"`
	ClientName        string      `json:"clientName"`
	Status            VisitStatus `json:"status"`
	FollowUpDate      *time.Time  `json:"followUpDate,omitempty"`
	Notes             string      `json:"notes"`
	Latitude          float64     `json:"latitude"`
	Longitude         float64     `json:"longitude"`
	Address           string      `json:"address"`
	CreatedAt         time.Time   `json:"createdAt"`
}
