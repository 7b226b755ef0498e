package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/davidly-empire/security-verifier-server/config"
	"github.com/davidly-empire/security-verifier-server/internal/dto"
	"github.com/davidly-empire/security-verifier-server/internal/repository"
	"github.com/davidly-empire/security-verifier-server/pkg/jwt"
	"github.com/davidly-empire/security-verifier-server/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongOldPassword   = errors.New("old password incorrect")
)

// AuthService handles login, token refresh, logout and the current-user view.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates an AuthService instance. rdb may be nil, which
// disables the logout blacklist.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. look the account up
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("load user failed", zap.Error(err))
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	// 2. verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. issue the token pair
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role, user.FactoryCode)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Role, user.FactoryCode, req.RememberMe)
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         toUserResponse(user),
	}, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil || claims.TokenType != "refresh" {
		return nil, ErrInvalidCredentials
	}

	if s.rdb != nil {
		revoked, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err == nil && revoked {
			return nil, ErrInvalidCredentials
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role, user.FactoryCode)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Role, user.FactoryCode, claims.RememberMe)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         toUserResponse(user),
	}, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil // no blacklist available; token simply ages out
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	return s.repo.User.Update(ctx, user)
}
