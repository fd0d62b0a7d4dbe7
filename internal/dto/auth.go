package dto

// LoginRequest carries login form credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed access token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// GoogleSignInRequest carries a Google ID token obtained client-side.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
