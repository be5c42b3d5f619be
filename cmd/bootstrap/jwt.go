package bootstrap

import (
	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.AccessTokenDuration <= 0 || cfg.JWT.RefreshTokenDuration <= 0 {
		return nil, errs.New("JWT token durations must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration), nil
}
