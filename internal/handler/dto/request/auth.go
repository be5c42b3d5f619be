package request

import (
	"strings"

	"gin-order-service/internal/domain/auth"
)

// LoginRequest caps the password at bcrypt's 72-byte input limit.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

// RefreshRequest is the body fallback for clients that cannot send the refresh cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (r *RefreshRequest) Token() string {
	return strings.TrimSpace(r.RefreshToken)
}
