package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
)

const (
	firebaseIssuerPrefix = "https://securetoken.google.com/"
	firebaseJWKSURL      = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"
)

// OIDCVerifier verifies RS256 ID tokens against a remote key set
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

type idTokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewFirebaseVerifier verifies Firebase ID tokens issued for projectID.
// Keys are fetched lazily on first use.
func NewFirebaseVerifier(ctx context.Context, projectID string) (*OIDCVerifier, error) {
	if projectID == "" {
		return nil, errors.New("firebase project id is required")
	}
	return newKeySetVerifier(ctx, firebaseIssuerPrefix+projectID, firebaseJWKSURL, projectID), nil
}

// NewOIDCVerifier verifies ID tokens of a discovery-capable OIDC issuer
func NewOIDCVerifier(ctx context.Context, issuerURL, audience string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery for %s: %w", issuerURL, err)
	}

	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: audience}),
	}, nil
}

func newKeySetVerifier(ctx context.Context, issuer, jwksURL, audience string) *OIDCVerifier {
	keySet := oidc.NewRemoteKeySet(ctx, jwksURL)
	return &OIDCVerifier{
		verifier: oidc.NewVerifier(issuer, keySet, &oidc.Config{ClientID: audience}),
	}
}

// Verify validates an ID token and returns its principal
func (v *OIDCVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	idToken, err := v.verifier.Verify(ctx, token)
	if err != nil {
		var expired *oidc.TokenExpiredError
		if errors.As(err, &expired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return &Principal{
		UID:   idToken.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

// ProjectIDFromCredentials reads project_id from a service account file
func ProjectIDFromCredentials(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read credentials file: %w", err)
	}

	var credentials struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(data, &credentials); err != nil {
		return "", fmt.Errorf("parse credentials file: %w", err)
	}

	projectID := strings.TrimSpace(credentials.ProjectID)
	if projectID == "" {
		return "", errors.New("credentials file has no project_id")
	}
	return projectID, nil
}
