package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a bearer token cannot be decoded.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the subset of a session token the client cares about.
type TokenClaims struct {
	// UserID is the "sub" claim, 0 when absent.
	UserID int64

	// ExpiresAt is the "exp" claim, zero when the token never expires.
	ExpiresAt time.Time
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseTokenClaims decodes tokenString without verifying its signature.
// The client cannot verify server tokens; it only reads them to avoid
// sending requests that are bound to be rejected.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}

	var out TokenClaims
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		id, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			return TokenClaims{}, errors.Join(ErrInvalidToken, err)
		}
		out.UserID = id
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, errors.Join(ErrInvalidToken, err)
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}

// IsTokenExpired reports whether tokenString is undecodable or expired at
// now. Tokens without an "exp" claim never expire.
func IsTokenExpired(tokenString string, now time.Time) bool {
	claims, err := ParseTokenClaims(tokenString)
	if err != nil {
		return true
	}
	return !claims.ExpiresAt.IsZero() && !now.Before(claims.ExpiresAt)
}
