//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gin-order-service/internal/domain/user"
	"gin-order-service/internal/handler/middleware"
	"gin-order-service/internal/pkg/jwt"
	"gin-order-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, svc *jwt.Service, minRole user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	r := gin.New()
	r.GET("/protected", m.RequireAuth(), m.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": string(role)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("middleware-secret", time.Minute, time.Hour)
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID, user.RoleStaff)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(userID, user.RoleStaff)
	require.NoError(t, err)
	foreign, err := jwt.NewService("other-secret", time.Minute, time.Hour).GenerateAccessToken(userID, user.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name       string
		minRole    user.Role
		header     string
		cookie     string
		expectCode int
	}{
		{name: "success: bearer token", minRole: user.RoleCustomer, header: "Bearer " + access, expectCode: http.StatusOK},
		{name: "success: cookie token", minRole: user.RoleStaff, cookie: access, expectCode: http.StatusOK},
		{name: "error: missing token", minRole: user.RoleCustomer, expectCode: http.StatusUnauthorized},
		{name: "error: refresh token used as access", minRole: user.RoleCustomer, header: "Bearer " + refresh, expectCode: http.StatusUnauthorized},
		{name: "error: foreign signature", minRole: user.RoleCustomer, header: "Bearer " + foreign, expectCode: http.StatusUnauthorized},
		{name: "error: role below minimum", minRole: user.RoleAdmin, header: "Bearer " + access, expectCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			newRouter(t, svc, tt.minRole).ServeHTTP(w, req)

			assert.Equal(t, tt.expectCode, w.Code)
			if tt.expectCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), userID.String())
				assert.Contains(t, w.Body.String(), `"role":"staff"`)
			}
		})
	}
}
