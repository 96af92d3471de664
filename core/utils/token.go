package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"scheduler-callback-api/core/config"
	"scheduler-callback-api/core/errors"
)

type TokenData struct {
	UserID string
	Scope  string
}

type tokenClaims struct {
	UserID string `json:"user_id"`
	Scope  string `json:"scope"`
	jwt.RegisteredClaims
}

// GenerateToken mints an HS256 access token with this service's claim
// layout. End-user tokens are issued by the upstream identity service; this
// service only validates them. Kept as the reference implementation of the
// claim contract, for tests and operator tooling.
func GenerateToken(userID string, ttl time.Duration, scope string) (string, error) {
	cfg, ok := config.GetSafe()
	if !ok || cfg.JWT.Secret == "" {
		return "", errors.NewAppError(errors.ErrInternalServer, "JWT secret not configured", nil)
	}

	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		Scope:  scope,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

func ValidateAndParseToken(tokenString string) (*TokenData, error) {
	cfg, ok := config.GetSafe()
	if !ok || cfg.JWT.Secret == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "JWT secret not configured", nil)
	}

	claims := new(tokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "unexpected signing method", nil)
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid or expired token", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token", nil)
	}

	return &TokenData{UserID: claims.UserID, Scope: claims.Scope}, nil
}
