package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/dkadris/storefront/internal/config"
	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/services"
	"github.com/dkadris/storefront/internal/store"
	"github.com/dkadris/storefront/internal/utils"
)

// AdminHandler serves the back-office session and dashboard endpoints.
type AdminHandler struct {
	store   *store.Store
	gateway *services.WorkerGateway
	cfg     *config.Config
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(st *store.Store, gateway *services.WorkerGateway, cfg *config.Config) *AdminHandler {
	return &AdminHandler{store: st, gateway: gateway, cfg: cfg}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

// Login exchanges the back-office password for an admin session token.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) != 1 {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, "admin", utils.RoleAdmin, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "token": token})
}

// Dashboard returns headline counts for the admin home screen.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	products := h.store.Products()
	orders := h.store.Orders()
	affiliates := h.store.Affiliates()
	payouts := h.store.Payouts()

	published := 0
	for _, p := range products {
		if p.Published {
			published++
		}
	}

	pendingPayouts := 0
	for _, p := range payouts {
		if p.Status == models.PayoutStatusPending || p.Status == models.PayoutStatusEligible {
			pendingPayouts++
		}
	}

	var revenue float64
	for _, o := range orders {
		revenue += o.Total
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"products":          len(products),
			"publishedProducts": published,
			"orders":            len(orders),
			"revenue":           revenue,
			"affiliates":        len(affiliates),
			"payouts":           len(payouts),
			"pendingPayouts":    pendingPayouts,
			"maintenance":       h.store.Maintenance(),
			"workerOnline":      h.gateway.Configured() && h.gateway.IsActive(),
		},
	})
}

// Health is the liveness probe.
func (h *AdminHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
