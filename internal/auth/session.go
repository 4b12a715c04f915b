package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the JWT payload issued by the login gate. The roster
// has a single operator credential; sessions exist so the token in the
// browser expires rather than the password being replayed.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs an HS256 session token for the operator.
func IssueSessionToken(secret []byte, username string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)

	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, expiresAt, nil
}

// ParseSessionToken validates a token and returns its claims.
func ParseSessionToken(secret []byte, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}

type contextKey string

const sessionKey contextKey = "session"

// SetSession stores the session claims on the request context.
func SetSession(ctx context.Context, claims *SessionClaims) context.Context {
	return context.WithValue(ctx, sessionKey, claims)
}

// GetSession returns the session claims, or nil when unauthenticated.
func GetSession(ctx context.Context) *SessionClaims {
	claims, _ := ctx.Value(sessionKey).(*SessionClaims)
	return claims
}
