package commands

import (
	"context"
	"log/slog"

	"gin-order-service/internal/domain/auth"
	"gin-order-service/internal/domain/user"
	reqdto "gin-order-service/internal/handler/dto/request"
	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/pkg/jwt"
	"gin-order-service/internal/pkg/password"
	"gin-order-service/internal/usecase/queries"
	"gin-order-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		if errs.Is(err, auth.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userReadModel, err := a.validateUser(ctx, credentials.Email().Value(), credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokens(userReadModel.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, userReadModel.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		slog.Warn("transaction failed during login", "user_id", userReadModel.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    userReadModel.ID,
		Role:      role,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	var userReadModel *queries.AuthorizedUserView
	err = a.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var findErr error
		userReadModel, findErr = a.readStore.FindByID(ctx, db, claims.UserID)
		return findErr
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUserNotFound)
	}

	if !userReadModel.IsActive {
		return nil, errs.ErrUserInactive
	}

	// role may have changed since the refresh token was issued
	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email, plain string) (*queries.AuthorizedUserView, error) {
	var (
		userReadModel  *queries.AuthorizedUserView
		hashedPassword string
	)
	err := a.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var findErr error
		userReadModel, hashedPassword, findErr = a.readStore.FindByEmail(ctx, db, email)
		return findErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same error as a password mismatch so emails cannot be enumerated
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if !userReadModel.IsActive {
		return nil, errs.ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, plain); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}
