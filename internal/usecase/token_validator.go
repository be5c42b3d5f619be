package usecase

import (
	"gin-order-service/internal/domain/user"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrNotAccessToken   = errs.New("token is not an access token")
	ErrTokenWithoutUser = errs.New("token carries no user id")
)

// TokenValidator resolves a bearer token into the caller identity the order and slot
// handlers authorize against.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type accessTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &accessTokenValidator{jwtService: jwtService}
}

// ValidateToken accepts access tokens only; a refresh token must go through /auth/refresh.
func (v *accessTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "parse bearer token")
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", errs.WithDetail(ErrNotAccessToken, string(claims.TokenType))
	}
	// every order query is scoped by owner, so an anonymous subject is never valid
	if claims.UserID == uuid.Nil {
		return uuid.Nil, "", ErrTokenWithoutUser
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrapf(err, "token role %q", claims.Role)
	}

	return claims.UserID, role, nil
}
