package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/learntech/courseplanner/internal/app/models"
	"github.com/learntech/courseplanner/internal/pkg/auth"
)

// TokenHeader carries the identity provider's ID token
const TokenHeader = "authtoken"

// Authorizer decides whether a token may access an endpoint
type Authorizer interface {
	Authorize(ctx context.Context, token string, required models.PrivilegeLevel) bool
}

// AuthMiddleware guards routes with a minimum privilege level
type AuthMiddleware struct {
	authorizer Authorizer
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authorizer Authorizer) *AuthMiddleware {
	return &AuthMiddleware{authorizer: authorizer}
}

// TokenFromRequest reads the authtoken header, falling back to an
// Authorization bearer token.
func TokenFromRequest(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader(TokenHeader)); token != "" {
		return token
	}
	if header := c.GetHeader("Authorization"); header != "" {
		if token, err := auth.ExtractBearerToken(header); err == nil {
			return token
		}
	}
	return ""
}

// RequireLevel rejects the request with 401 unless the caller's role is at
// least the given level. Nothing downstream runs on rejection.
func (m *AuthMiddleware) RequireLevel(level models.PrivilegeLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authorizer.Authorize(c.Request.Context(), TokenFromRequest(c), level) {
			RespondUnauthorized(c)
			return
		}
		c.Next()
	}
}
