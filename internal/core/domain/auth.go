package domain

// AuthContext carries the identity of the authenticated user into core
// operations. It is an explicit value, not ambient session state, so services
// stay pure functions of their inputs.
type AuthContext struct {
	UserID string
	Email  string
	Name   string
	Role   UserRole
}

// IsAdmin reports whether the authenticated user has the admin role.
func (a AuthContext) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// GoogleUserInfo holds the subset of the Google userinfo payload used to
// match a corporate sign-in to an existing account.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
