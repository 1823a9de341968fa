// Package auth implements registration, login and token refresh.
package auth

import (
	"go.uber.org/zap"

	"school_hub_server/internal/dao/mysql/repository"
	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/dto/respond"
	"school_hub_server/internal/model"
	"school_hub_server/pkg/errorx"
	"school_hub_server/pkg/util/jwt"
	"school_hub_server/pkg/util/random"
)

// RoleView is the slice of the role service this package needs.
type RoleView interface {
	GetUserRoles(userUuid string) ([]string, error)
}

type authService struct {
	repos *repository.Repositories
	roles RoleView
}

// NewAuthService constructs the auth service.
func NewAuthService(repos *repository.Repositories, roles RoleView) *authService {
	return &authService{repos: repos, roles: roles}
}

// Register creates an account and immediately issues a token pair.
func (s *authService) Register(req request.RegisterRequest) (*respond.LoginRespond, error) {
	if _, err := s.repos.User.FindByEmail(req.Email); err == nil {
		return nil, errorx.New(errorx.CodeUserExist, "email already registered")
	} else if !errorx.IsNotFound(err) {
		return nil, err
	}

	user := &model.User{
		Uuid:        "U" + random.GetNowAndLenRandomString(11),
		Name:        req.Name,
		Email:       req.Email,
		RawPassword: req.Password,
	}
	if err := s.repos.User.Create(user); err != nil {
		return nil, err
	}

	return s.buildLoginRespond(user)
}

// Login authenticates by email and password.
func (s *authService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "user not found")
		}
		return nil, err
	}
	if user.Status != 0 {
		return nil, errorx.New(errorx.CodeForbidden, "account disabled")
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "wrong password")
	}

	return s.buildLoginRespond(user)
}

// Refresh validates a refresh token and issues a fresh pair.
func (s *authService) Refresh(req request.RefreshTokenRequest) (*respond.LoginRespond, error) {
	claims, err := jwt.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeUnauthorized, "invalid refresh token")
	}
	if claims.Subject != "refresh_token" {
		return nil, errorx.New(errorx.CodeUnauthorized, "not a refresh token")
	}

	user, err := s.repos.User.FindByUuid(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.Status != 0 {
		return nil, errorx.New(errorx.CodeForbidden, "account disabled")
	}

	return s.buildLoginRespond(user)
}

func (s *authService) buildLoginRespond(user *model.User) (*respond.LoginRespond, error) {
	roles, err := s.roles.GetUserRoles(user.Uuid)
	if err != nil {
		zap.L().Error("load roles for login error", zap.Error(err))
		roles = nil
	}

	accessToken, err := jwt.GenerateAccessToken(user.Uuid)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "generate access token")
	}
	refreshToken, _, err := jwt.GenerateRefreshToken(user.Uuid)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "generate refresh token")
	}

	return &respond.LoginRespond{
		UserId:       user.Uuid,
		Name:         user.Name,
		Email:        user.Email,
		Avatar:       user.Avatar,
		Roles:        roles,
		ActiveRole:   user.ActiveRole,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
