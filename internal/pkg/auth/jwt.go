package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultIssuer = "course-planner"

// HS256Config defines shared-secret token settings
type HS256Config struct {
	Secret string
	Issuer string
}

// HS256Verifier verifies and mints shared-secret tokens. It stands in for the
// identity provider in local development and tests.
type HS256Verifier struct {
	secret []byte
	issuer string
}

// Claims defines the token content
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// NewHS256Verifier creates a new shared-secret verifier
func NewHS256Verifier(config HS256Config) (*HS256Verifier, error) {
	if config.Secret == "" {
		return nil, errors.New("hs256 secret is required")
	}
	issuer := config.Issuer
	if issuer == "" {
		issuer = defaultIssuer
	}
	return &HS256Verifier{secret: []byte(config.Secret), issuer: issuer}, nil
}

// IssueToken mints a token for the given principal
func (v *HS256Verifier) IssueToken(principal Principal, ttl time.Duration) (string, error) {
	if principal.UID == "" {
		return "", errors.New("uid is required")
	}

	now := time.Now()
	claims := &Claims{
		Email: principal.Email,
		Name:  principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    v.issuer,
			Subject:   principal.UID,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and returns its principal
func (v *HS256Verifier) Verify(_ context.Context, tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Principal{
		UID:   claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
