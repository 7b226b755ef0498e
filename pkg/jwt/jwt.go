package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/davidly-empire/security-verifier-server/config"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims are the custom JWT claims carried by every token.
type Claims struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	FactoryCode string `json:"factory_code"`
	TokenType   string `json:"token_type"`            // "access" | "refresh"
	RememberMe  bool   `json:"remember_me,omitempty"` // refresh tokens only
	jwtv5.RegisteredClaims
}

// Manager issues and verifies access/refresh token pairs.
type Manager struct {
	secret                  []byte
	accessTokenTTL          time.Duration
	refreshTokenTTLDefault  time.Duration
	refreshTokenTTLRemember time.Duration
}

// NewManager creates a JWT manager from auth configuration.
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:                  []byte(cfg.JWTSecret),
		accessTokenTTL:          cfg.AccessTokenTTL,
		refreshTokenTTLDefault:  cfg.RefreshTokenTTLDefault,
		refreshTokenTTLRemember: cfg.RefreshTokenTTLRemember,
	}
}

// GenerateAccessToken issues a short-lived access token.
func (m *Manager) GenerateAccessToken(userID, role, factoryCode string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      userID,
		Role:        role,
		FactoryCode: factoryCode,
		TokenType:   "access",
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.accessTokenTTL)),
			Issuer:    "security-verifier",
		},
	}
	return jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(m.secret)
}

// GenerateRefreshToken issues a refresh token; rememberMe extends the TTL.
func (m *Manager) GenerateRefreshToken(userID, role, factoryCode string, rememberMe bool) (string, error) {
	ttl := m.refreshTokenTTLDefault
	if rememberMe {
		ttl = m.refreshTokenTTLRemember
	}
	now := time.Now()
	claims := Claims{
		UserID:      userID,
		Role:        role,
		FactoryCode: factoryCode,
		TokenType:   "refresh",
		RememberMe:  rememberMe,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "security-verifier",
		},
	}
	return jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseToken verifies a token string and returns its claims.
func (m *Manager) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
