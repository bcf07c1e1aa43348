package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/pkg/apperrors"
	identity "github.com/learntech/courseplanner/internal/pkg/auth"
	"github.com/learntech/courseplanner/internal/pkg/logger"
)

// UserLookup resolves an identity-provider uid to the stored user and role
type UserLookup interface {
	GetUserByUID(ctx context.Context, uid string) (*models.User, error)
}

// Identity is a verified caller together with its stored role
type Identity struct {
	Principal *identity.Principal
	User      *models.User
	Level     models.PrivilegeLevel
}

// AuthorizationService decides whether a token may access an endpoint
type AuthorizationService struct {
	verifier identity.Verifier
	users    UserLookup
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(verifier identity.Verifier, users UserLookup) *AuthorizationService {
	return &AuthorizationService{
		verifier: verifier,
		users:    users,
	}
}

// Resolve verifies the token and loads the caller's role
func (s *AuthorizationService) Resolve(ctx context.Context, token string) (*Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.ErrTokenMissing
	}

	principal, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
	}

	user, err := s.users.GetUserByUID(ctx, principal.UID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load role for %s: %w", principal.UID, err)
	}

	return &Identity{
		Principal: principal,
		User:      user,
		Level:     models.LevelForRole(user.RoleName),
	}, nil
}

// Authorize reports whether the token belongs to a user whose role is at
// least the required level. It never fails: every error denies access.
func (s *AuthorizationService) Authorize(ctx context.Context, token string, required models.PrivilegeLevel) bool {
	id, err := s.Resolve(ctx, token)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrTokenMissing, apperrors.ErrTokenInvalid, apperrors.ErrUserNotFound) {
			logger.Ctx(ctx).Debug().Err(err).Str("required", required.String()).Msg("Access denied")
		} else {
			logger.Ctx(ctx).Error().Err(err).Str("required", required.String()).Msg("Authorization check failed")
		}
		return false
	}

	if !id.Level.Allows(required) {
		logger.Ctx(ctx).Info().
			Str("uid", id.Principal.UID).
			Str("role", id.User.RoleName).
			Str("required", required.String()).
			Msg("Insufficient privilege level")
		return false
	}

	return true
}
