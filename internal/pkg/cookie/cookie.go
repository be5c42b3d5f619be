package cookie

import (
	"net/http"
	"time"

	"gin-order-service/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	accessTokenPath = "/"
	// the refresh token is only ever presented to the auth endpoints
	refreshTokenPath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(sameSite(cfg.SameSite))
	setHTTPOnly(c, cfg, AccessTokenCookieName, accessToken, accessTokenPath, int(accessExpiry.Seconds()))
	setHTTPOnly(c, cfg, RefreshTokenCookieName, refreshToken, refreshTokenPath, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSite(cfg.SameSite))
	setHTTPOnly(c, cfg, AccessTokenCookieName, "", accessTokenPath, -1)
	setHTTPOnly(c, cfg, RefreshTokenCookieName, "", refreshTokenPath, -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func setHTTPOnly(c *gin.Context, cfg config.CookieConfig, name, value, path string, maxAge int) {
	c.SetCookie(name, value, maxAge, path, cfg.Domain, cfg.Secure, true)
}

func sameSite(v string) http.SameSite {
	switch v {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
