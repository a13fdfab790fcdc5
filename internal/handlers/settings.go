package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dkadris/storefront/internal/middleware"
	"github.com/dkadris/storefront/internal/services"
)

// SettingsHandler serves site configuration and the maintenance switch.
type SettingsHandler struct {
	settings *services.SettingsService
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get returns the effective site configuration, with defaults filled in for
// any field the stored record does not cover.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.settings.Get()})
}

// Update applies a partial site configuration patch over the current record.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "empty request body")
	}

	updated, err := h.settings.Update(body, middleware.BearerToken(c))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid settings payload")
	}

	return c.JSON(fiber.Map{"success": true, "data": updated})
}

// Maintenance reports whether the storefront is in maintenance mode. The
// endpoint stays reachable during maintenance so clients can poll it.
func (h *SettingsHandler) Maintenance(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "maintenance": h.settings.Maintenance()})
}

type maintenanceRequest struct {
	Enabled bool `json:"enabled"`
}

// SetMaintenance flips the maintenance switch.
func (h *SettingsHandler) SetMaintenance(c *fiber.Ctx) error {
	var req maintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.settings.SetMaintenance(req.Enabled); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "maintenance": req.Enabled})
}
