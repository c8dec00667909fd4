package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/schedule-service/internal/domain"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	User    *domain.User
	Staffer *domain.Staffer
	Viewer  domain.Viewer
}

// PrincipalLoader resolves a user id from a token into a principal.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, userID string) (*Principal, error)
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens *TokenManager
	loader PrincipalLoader
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, loader PrincipalLoader) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, loader: loader}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	principal, err := m.loader.LoadPrincipal(c.UserContext(), claims.Subject)
	if err != nil {
		return err
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// ViewerFromContext returns the caller as a viewer; the zero viewer when
// unauthenticated.
func ViewerFromContext(c *fiber.Ctx) domain.Viewer {
	if principal, ok := PrincipalFromContext(c); ok {
		return principal.Viewer
	}
	return domain.Viewer{}
}
