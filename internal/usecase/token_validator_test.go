//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"gin-order-service/internal/domain/user"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/pkg/jwt"
	"gin-order-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("validator-secret", 15*time.Minute, time.Hour)
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("success: access token yields identity", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleStaff)
		require.NoError(t, err)

		gotID, gotRole, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, user.RoleStaff, gotRole)
	})

	t.Run("error: refresh token is refused", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleCustomer)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, usecase.ErrNotAccessToken))
	})

	t.Run("error: token from another issuer", func(t *testing.T) {
		other := jwt.NewService("someone-else", 15*time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("error: token without a subject", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(uuid.Nil, user.RoleCustomer)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, usecase.ErrTokenWithoutUser))
	})

	t.Run("error: unknown role claim", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.Role("operator"))
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
