//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"gin-order-service/internal/domain/user"
	"gin-order-service/internal/handler/dto/request"
	resdto "gin-order-service/internal/handler/dto/response"
	"gin-order-service/tests/common/authtest"
	"gin-order-service/tests/common/dbtest"
	"gin-order-service/tests/common/httptest"
	"gin-order-service/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "success: valid credentials", email: "customer@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "error: unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "error: wrong password", email: "customer@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "error: inactive user", email: "inactive@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusForbidden},
		{name: "error: empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "error: empty password", email: "customer@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
				require.NotEmpty(t, res.AccessToken)
				require.Equal(t, "customer", res.User.Role)
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("success: refresh cookie issues a new access token", func() {
		t := s.T()

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "customer@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{httptest.ExtractCookie(login, "refresh_token")}, "")

		var res resdto.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("error: access token is not a refresh token", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "customer@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: token}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: garbage token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: "invalid"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("error: missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("success: valid token", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "customer@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	s.Run("error: no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("success: returns the caller", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "staff@example.com")
		require.Contains(t, w.Body.String(), `"role":"staff"`)
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("error: expired token", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleCustomer))
		expired := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("error: refresh token cannot authenticate", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "refresh@example.com", string(user.RoleCustomer))
		refresh := s.jwtHelper.GenerateRefreshToken(t, userID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, refresh)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
