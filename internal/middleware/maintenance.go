package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dkadris/storefront/internal/config"
	"github.com/dkadris/storefront/internal/store"
)

// MaintenanceGate replaces public routes with a maintenance response while
// the flag is up. Administrators always pass: the admin surface staying
// reachable is a hard invariant of the maintenance switch.
func MaintenanceGate(st *store.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !st.Maintenance() {
			return c.Next()
		}
		if IsAdmin(c, cfg) {
			return c.Next()
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success":     false,
			"maintenance": true,
			"message":     "Our digital boutique is temporarily closed for artisanal updates.",
		})
	}
}
