package auth

import (
	"context"
	"errors"
	"strings"
)

// Identity verification errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// Principal is the identity proven by a verified token
type Principal struct {
	UID   string
	Email string
	Name  string
}

// Verifier validates an opaque bearer token issued by the identity provider
type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// ExtractBearerToken extracts the token from an Authorization-style header.
// The "Bearer " prefix is optional.
func ExtractBearerToken(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(strings.Trim(authHeader, "\"'"))
	if strings.EqualFold(authHeader, "bearer") {
		return "", ErrInvalidFormat
	}
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
		authHeader = strings.TrimSpace(authHeader[7:])
	}

	if authHeader == "" || strings.ContainsAny(authHeader, " \t") {
		return "", ErrInvalidFormat
	}
	return authHeader, nil
}
