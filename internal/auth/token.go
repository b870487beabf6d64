package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"fastkart-parcels/internal/apperr"
	"fastkart-parcels/internal/domain"
)

// CookieName is the cookie carrying the session token.
const CookieName = "auth_token"

// Claims is the authenticated identity carried by a token.
type Claims struct {
	UserID string
	Role   domain.Role
}

type tokenClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a new TokenManager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the lifetime of issued tokens.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Sign issues a token for c that expires after the configured TTL.
func (m *TokenManager) Sign(c Claims) (string, error) {
	now := m.now()
	claims := tokenClaims{
		UserID: c.UserID,
		Role:   string(c.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Verify parses token and returns its claims.
// Any malformed, expired or foreign token yields apperr.ErrUnauthorized.
func (m *TokenManager) Verify(token string) (Claims, error) {
	if token == "" {
		return Claims{}, apperr.ErrUnauthorized
	}
	var c tokenClaims
	tok, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return Claims{}, apperr.ErrUnauthorized
	}
	if c.UserID == "" {
		return Claims{}, apperr.ErrUnauthorized
	}
	return Claims{UserID: c.UserID, Role: domain.Role(c.Role)}, nil
}
