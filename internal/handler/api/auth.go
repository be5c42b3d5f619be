package api

import (
	"net/http"

	reqdto "gin-order-service/internal/handler/dto/request"
	resdto "gin-order-service/internal/handler/dto/response"
	"gin-order-service/internal/handler/httperr"
	"gin-order-service/internal/handler/middleware"
	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/pkg/cookie"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/pkg/jwt"
	"gin-order-service/internal/usecase/commands"
	"gin-order-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errBlankRefreshToken = errs.New("refresh token is blank")

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		q:          q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary User login
// @Description Login with email and password; tokens are also set as HttpOnly cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		h.abortAuth(c, err)
		return
	}

	current, err := h.q.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.setCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        resdto.FromAuthorizedUser(current),
	})
}

// @Summary Refresh tokens
// @Description Issue a new token pair from the refresh cookie or the request body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		err := c.ShouldBindJSON(&req)
		if err == nil && req.Token() == "" {
			err = errBlankRefreshToken
		}
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Refresh token required", nil)
			return
		}
		token = req.Token()
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		h.abortAuth(c, err)
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.TokenResponse{AccessToken: pair.AccessToken})
}

// @Summary User logout
// @Description Clear the token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; the client copy is all there is to drop
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user_id missing from context"), "Internal server error", nil)
		return
	}

	current, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUser(current))
}

func (h *AuthHandler) abortAuth(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errs.Is(err, commands.ErrTokenValidation):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
	default:
		httperr.Abort(c, err)
	}
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cfg.Cookie, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessDuration(), h.jwtService.RefreshDuration())
}
