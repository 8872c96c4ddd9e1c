// Package auth issues and verifies the signed identity tokens used by the API.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken indicates a malformed token, a bad signature or bad claims.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired indicates the token was valid but is past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// GenerateToken signs an HS256 token whose subject is the user id.
// Expiry is the only invalidation mechanism; there is no revocation list.
func GenerateToken(userID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry and returns the user id.
func ParseToken(tokenStr, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// ExtractBearer pulls the token out of an Authorization header value.
// Returns "" when the header is not a well-formed "Bearer <token>".
func ExtractBearer(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
