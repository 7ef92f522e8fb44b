package dto

// LoginRequest defines the credentials for a password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
// The refresh token is also set as an HTTP-only cookie; the body copy
// exists for non-browser clients.
type LoginResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         UserResponse `json:"user"`
}

// RefreshTokenRequest carries a refresh token for clients that cannot use
// cookies. Cookie-based clients send an empty body; both values are then
// read from the login cookies.
type RefreshTokenRequest struct {
	UserID       string `json:"userID"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// GoogleIDTokenRequest carries a Google ID token from a client-side sign-in.
type GoogleIDTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
