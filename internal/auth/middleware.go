package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/support-bot/pkg/util"
)

// PrincipalKey locates the authenticated claims in the request context.
const PrincipalKey = "auth_principal"

// RequireAdmin validates the Bearer token and stores the claims in locals.
func RequireAdmin(tokens *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return apperrors.NewUnauthorized("missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apperrors.NewUnauthorized("malformed authorization header")
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return apperrors.NewUnauthorized("invalid or expired token")
		}

		c.Locals(PrincipalKey, claims)
		return c.Next()
	}
}

// PrincipalFrom extracts the authenticated claims, if present.
func PrincipalFrom(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(PrincipalKey).(*Claims)
	return claims, ok
}
