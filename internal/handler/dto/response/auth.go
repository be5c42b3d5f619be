package response

import (
	"gin-order-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:       v.ID,
		Email:    v.Email,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}
