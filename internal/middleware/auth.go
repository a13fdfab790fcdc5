package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dkadris/storefront/internal/config"
	"github.com/dkadris/storefront/internal/utils"
)

const subjectContextKey = "currentSubject"

// BearerToken extracts the bearer credential from the Authorization header,
// or "" when absent or malformed.
func BearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// AdminRequired validates an administrator JWT issued by this server.
func AdminRequired(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c, cfg) {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}

// IsAdmin reports whether the request carries a valid administrator token.
// Used by read endpoints that include drafts for administrators only.
func IsAdmin(c *fiber.Ctx, cfg *config.Config) bool {
	token := BearerToken(c)
	if token == "" {
		return false
	}
	_, role, err := utils.ParseToken(cfg.JWTSecret, token)
	return err == nil && role == utils.RoleAdmin
}

// AffiliateSubject parses a local affiliate JWT and loads the account email
// into context. Gateway-backed deployments validate tokens on the worker
// instead; handlers proxy the raw bearer there.
func AffiliateSubject(c *fiber.Ctx, cfg *config.Config) (string, bool) {
	token := BearerToken(c)
	if token == "" {
		return "", false
	}
	subject, role, err := utils.ParseToken(cfg.JWTSecret, token)
	if err != nil || role != utils.RoleAffiliate {
		return "", false
	}
	c.Locals(subjectContextKey, subject)
	return subject, true
}
