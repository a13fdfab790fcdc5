package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dkadris/storefront/internal/config"
	"github.com/dkadris/storefront/internal/middleware"
	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/services"
	"github.com/dkadris/storefront/internal/utils"
)

// CatalogHandler manages product catalog endpoints.
type CatalogHandler struct {
	catalog *services.CatalogService
	cfg     *config.Config
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog *services.CatalogService, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, cfg: cfg}
}

// List returns a paginated product listing. Shoppers only see published
// products; administrators see drafts too.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	admin := middleware.IsAdmin(c, h.cfg)

	page := h.catalog.List(pg.Page, pg.Limit, admin, middleware.BearerToken(c))
	return c.JSON(fiber.Map{
		"success": true,
		"data":    page.Data,
		"total":   page.Total,
		"page":    page.Page,
		"limit":   page.Limit,
		"hasMore": page.HasMore,
	})
}

// Upsert creates or replaces a product.
func (h *CatalogHandler) Upsert(c *fiber.Ctx) error {
	var payload models.Product
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Price < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "price must not be negative")
	}

	saved, err := h.catalog.Upsert(payload, middleware.BearerToken(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": saved})
}

// Delete removes a product by id.
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.catalog.Delete(id, middleware.BearerToken(c)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
