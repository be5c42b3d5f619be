//go:build unit || e2e

package builder

import (
	"gin-order-service/internal/domain/auth"
	reqdto "gin-order-service/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

// NewAuthBuilder matches the credentials dbtest fixtures create.
func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: a.Email, Password: a.Password}
}

func (a *AuthBuilder) BuildCredentials() (auth.Credentials, error) {
	return auth.NewCredentials(a.Email, a.Password)
}
