package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dkadris/storefront/internal/config"
	"github.com/dkadris/storefront/internal/middleware"
	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/services"
)

// GalleryHandler manages gallery endpoints.
type GalleryHandler struct {
	gallery *services.GalleryService
	cfg     *config.Config
}

// NewGalleryHandler constructs GalleryHandler.
func NewGalleryHandler(gallery *services.GalleryService, cfg *config.Config) *GalleryHandler {
	return &GalleryHandler{gallery: gallery, cfg: cfg}
}

// Fetch returns gallery items and configuration. A hidden gallery returns an
// empty item list to shoppers but still includes the configuration.
func (h *GalleryHandler) Fetch(c *fiber.Ctx) error {
	admin := middleware.IsAdmin(c, h.cfg)
	payload := h.gallery.Fetch(admin, middleware.BearerToken(c))
	return c.JSON(fiber.Map{
		"success": true,
		"items":   payload.Items,
		"config":  payload.Config,
	})
}

type galleryReplaceRequest struct {
	Items  []models.GalleryItem       `json:"items"`
	Config *models.GalleryConfigPatch `json:"config"`
}

// Replace overwrites the items and/or merges a configuration update.
func (h *GalleryHandler) Replace(c *fiber.Ctx) error {
	var req galleryReplaceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Items == nil && req.Config == nil {
		return fiber.NewError(fiber.StatusBadRequest, "nothing to update")
	}

	if err := h.gallery.Replace(req.Items, req.Config, middleware.BearerToken(c)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

type galleryReorderRequest struct {
	Index int `json:"index"`
}

// Reorder swaps the items at display positions index and index+1.
func (h *GalleryHandler) Reorder(c *fiber.Ctx) error {
	var req galleryReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.gallery.SwapAdjacent(req.Index, middleware.BearerToken(c)); err != nil {
		if errors.Is(err, services.ErrInvalidSwapIndex) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	payload := h.gallery.Fetch(true, middleware.BearerToken(c))
	return c.JSON(fiber.Map{"success": true, "items": payload.Items})
}
