package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pda-backend/internal/services"
)

// RequireToken verifies the bearer token cryptographically and exposes
// the decoded identity to the handler.
func (handler *Handler) RequireToken(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	token := bearerToken(authHeader)
	if token == "" {
		return apiError(c, fiber.StatusUnauthorized, "Missing token")
	}

	claims, err := handler.auth.VerifyToken(token)
	if err != nil {
		return apiError(c, fiber.StatusForbidden, "Invalid token")
	}

	c.Locals(contextClaimsKey, claims)
	return c.Next()
}

// RequireAuthHeader only checks that an Authorization header is present.
// It does not decode the token or match it against the resource owner;
// the report and test routes shipped with this weaker guard.
func (handler *Handler) RequireAuthHeader(c *fiber.Ctx) error {
	if c.Get(fiber.HeaderAuthorization) == "" {
		return apiError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return c.Next()
}

func bearerToken(authHeader string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
}

func currentClaims(c *fiber.Ctx) (*services.Claims, bool) {
	claims, ok := c.Locals(contextClaimsKey).(*services.Claims)
	return claims, ok
}
