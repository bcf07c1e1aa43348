package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/pkg/apperrors"
	identity "github.com/learntech/courseplanner/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier map[string]string

func (f fakeVerifier) Verify(_ context.Context, token string) (*identity.Principal, error) {
	uid, ok := f[token]
	if !ok {
		return nil, identity.ErrInvalidToken
	}
	return &identity.Principal{UID: uid}, nil
}

type fakeUsers struct {
	roles map[string]string
	err   error
	calls int
}

func (f *fakeUsers) GetUserByUID(_ context.Context, uid string) (*models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	role, ok := f.roles[uid]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("user not found")
	}
	return &models.User{UID: uid, RoleName: role}, nil
}

func newTestService(users *fakeUsers) *AuthorizationService {
	verifier := fakeVerifier{
		"admin-token":      "admin",
		"support-token":    "support",
		"pm-token":         "pm",
		"subscriber-token": "subscriber",
		"guest-token":      "guest",
		"orphan-token":     "orphan",
	}
	return NewAuthorizationService(verifier, users)
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{roles: map[string]string{
		"admin":      models.RoleAdmin,
		"support":    models.RoleSupportAdmin,
		"pm":         models.RoleProgramManager,
		"subscriber": models.RoleSubscriber,
		"guest":      "Guest",
	}}
	svc := newTestService(users)

	tests := []struct {
		name     string
		token    string
		required models.PrivilegeLevel
		want     bool
	}{
		{"admin on admin endpoint", "admin-token", models.LevelAdmin, true},
		{"admin on program manager endpoint", "admin-token", models.LevelProgramManager, true},
		{"support admin on support endpoint", "support-token", models.LevelSupportAdmin, true},
		{"support admin on admin endpoint", "support-token", models.LevelAdmin, false},
		{"program manager on program manager endpoint", "pm-token", models.LevelProgramManager, true},
		{"program manager on support endpoint", "pm-token", models.LevelSupportAdmin, false},
		{"subscriber on subscriber endpoint", "subscriber-token", models.LevelSubscriber, true},
		{"subscriber on admin endpoint", "subscriber-token", models.LevelAdmin, false},
		{"unknown role", "guest-token", models.LevelSubscriber, false},
		{"user without row", "orphan-token", models.LevelSubscriber, false},
		{"invalid token", "forged", models.LevelSubscriber, false},
		{"empty token", "", models.LevelSubscriber, false},
		{"blank token", "   ", models.LevelSubscriber, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Authorize(context.Background(), tt.token, tt.required))
		})
	}
}

func TestAuthorizeDeniesOnLookupFailure(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{err: errors.New("connection reset")}
	svc := newTestService(users)

	assert.False(t, svc.Authorize(context.Background(), "admin-token", models.LevelSubscriber))
	assert.Equal(t, 1, users.calls)
}

func TestAuthorizeSkipsLookupWithoutToken(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{roles: map[string]string{}}
	svc := newTestService(users)

	assert.False(t, svc.Authorize(context.Background(), "", models.LevelSubscriber))
	assert.False(t, svc.Authorize(context.Background(), "forged", models.LevelSubscriber))
	assert.Zero(t, users.calls)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{roles: map[string]string{"pm": models.RoleProgramManager}}
	svc := newTestService(users)

	id, err := svc.Resolve(context.Background(), "pm-token")
	require.NoError(t, err)
	assert.Equal(t, "pm", id.Principal.UID)
	assert.Equal(t, models.LevelProgramManager, id.Level)

	_, err = svc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrTokenMissing)

	_, err = svc.Resolve(context.Background(), "forged")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = svc.Resolve(context.Background(), "orphan-token")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
