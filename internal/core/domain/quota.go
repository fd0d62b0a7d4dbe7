package domain

// DefaultMonthlyTarget is the display value used when a collaborator has no
// stored quota target. No row is created for the default.
const DefaultMonthlyTarget = 100

// QuotaTarget is a collaborator's assigned monthly visit-count goal, keyed by
// email. At most one target exists per collaborator; writes are upserts.
type QuotaTarget struct {
	CollaboratorEmail string `json:"collaboratorEmail"`
	MonthlyTarget     int    `json:"monthlyTarget"`
}

// CollaboratorQuota is one row of the manager's quota overview: a
// collaborator together with their current-month progress.
type CollaboratorQuota struct {
	CollaboratorEmail string        `json:"collaboratorEmail"`
	CollaboratorName  string        `json:"collaboratorName"`
	Progress          QuotaProgress `json:"progress"`
}
