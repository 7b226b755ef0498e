package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/davidly-empire/security-verifier-server/config"
	"github.com/davidly-empire/security-verifier-server/internal/dto"
	"github.com/davidly-empire/security-verifier-server/internal/model"
	"github.com/davidly-empire/security-verifier-server/pkg/jwt"
)

func newAuthFixture(t *testing.T) (AuthService, *mockRepos, *jwt.Manager) {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "unit-test-secret-0123456789",
			AccessTokenTTL:          15 * time.Minute,
			RefreshTokenTTLDefault:  24 * time.Hour,
			RefreshTokenTTLRemember: 168 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo, mocks := newMockRepository()
	return NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop()), mocks, jwtMgr
}

func seedUser(t *testing.T, mocks *mockRepos, email, password string, active bool) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		FullName:     "Admin User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
		FactoryCode:  "F1",
		IsActive:     active,
	}
	if err := mocks.user.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, mocks, jwtMgr := newAuthFixture(t)
	user := seedUser(t, mocks, "admin@example.com", "secret123", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("token pair incomplete")
	}
	if resp.ExpiresIn != 900 {
		t.Errorf("expires_in = %d, want 900", resp.ExpiresIn)
	}
	if resp.User.ID != user.UserID {
		t.Errorf("user id = %q, want %q", resp.User.ID, user.UserID)
	}

	claims, err := jwtMgr.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.TokenType != "access" || claims.Role != "admin" || claims.FactoryCode != "F1" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, mocks, _ := newAuthFixture(t)
	seedUser(t, mocks, "admin@example.com", "secret123", true)

	cases := []dto.LoginRequest{
		{Email: "admin@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret123"},
	}
	for _, req := range cases {
		if _, err := svc.Login(context.Background(), &req); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%s) err = %v, want ErrInvalidCredentials", req.Email, err)
		}
	}
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	svc, mocks, _ := newAuthFixture(t)
	seedUser(t, mocks, "admin@example.com", "secret123", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("err = %v, want ErrAccountDisabled", err)
	}
}

func TestRefreshTokenRotatesPair(t *testing.T) {
	svc, mocks, _ := newAuthFixture(t)
	seedUser(t, mocks, "admin@example.com", "secret123", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Fatal("refreshed pair incomplete")
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, mocks, _ := newAuthFixture(t)
	seedUser(t, mocks, "admin@example.com", "secret123", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// an access token must not pass as a refresh token
	if _, err := svc.RefreshToken(context.Background(), login.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, mocks, _ := newAuthFixture(t)
	user := seedUser(t, mocks, "admin@example.com", "secret123", true)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "brand-new-pass",
	})
	if !errors.Is(err, ErrWrongOldPassword) {
		t.Fatalf("err = %v, want ErrWrongOldPassword", err)
	}

	err = svc.ChangePassword(ctx, user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "brand-new-pass",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "brand-new-pass"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestLogoutWithoutRedis(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	// no blacklist backend configured: logout is a no-op, not an error
	if err := svc.Logout(context.Background(), "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Logout: %v", err)
	}
}
