package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenScheme is the expected prefix in the Authorization header
	TokenScheme = "Token"

	tokenSubject = "access"
	tokenTTL     = 7 * 24 * time.Hour // one week, no refresh mechanism
)

// ErrInvalidToken covers every token failure: bad scheme, bad signature,
// expiry, malformed payload. Callers never learn which one it was.
var ErrInvalidToken = errors.New("invalid token")

type UserClaims struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	jwt.RegisteredClaims
}

// CreateUserToken issues a signed HS256 token asserting the given identity
func CreateUserToken(firstName, lastName, secret string) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		FirstName: firstName,
		LastName:  lastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   tokenSubject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseUserToken verifies signature and expiry and returns the identity claims
func ParseUserToken(tokenStr, secret string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	// The payload must carry a full name pair to be resolvable
	if claims.FirstName == "" || claims.LastName == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractToken pulls the raw JWT out of an Authorization header value.
// Format is "<scheme> <token>" with the fixed Token scheme.
func ExtractToken(header string) (string, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != TokenScheme || parts[1] == "" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}
