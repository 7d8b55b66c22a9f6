package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/HotelBooker/internal/domain"
)

var errEmptySecret = errors.New("jwt secret is empty")

type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 bearer tokens.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	return &TokenManager{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs a token for userID. A zero ttl produces a token without expiry.
func (m *TokenManager) Issue(userID int64, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *TokenManager) Parse(token string) (int64, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.UserID <= 0 {
		return 0, fmt.Errorf("%w: invalid token claims", domain.ErrUnauthorized)
	}

	return claims.UserID, nil
}
