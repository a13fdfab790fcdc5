package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dkadris/storefront/internal/config"
	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/services"
)

// PayoutHandler serves the admin payout queue. In standalone mode the local
// payout ledger is authoritative; when a worker is configured, payout
// administration goes through it so both sides agree on the ledger.
type PayoutHandler struct {
	payouts *services.PayoutService
	gateway *services.WorkerGateway
	cfg     *config.Config
}

// NewPayoutHandler constructs PayoutHandler.
func NewPayoutHandler(payouts *services.PayoutService, gateway *services.WorkerGateway, cfg *config.Config) *PayoutHandler {
	return &PayoutHandler{payouts: payouts, gateway: gateway, cfg: cfg}
}

// List returns every payout request for the admin dashboard.
func (h *PayoutHandler) List(c *fiber.Ctx) error {
	if !h.gateway.Configured() {
		return c.JSON(fiber.Map{"success": true, "data": h.payouts.List()})
	}
	if !h.gateway.IsActive() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "payout service unreachable; try again later")
	}

	payouts, err := h.gateway.Payouts(h.gateway.AdminToken())
	if err != nil {
		return gatewayError(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": payouts})
}

type payoutStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus advances a payout request through its lifecycle.
func (h *PayoutHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var req payoutStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !h.gateway.Configured() {
		payout, err := h.payouts.Transition(id, req.Status, models.PayoutActorAdmin)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPayoutNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrUnknownStatus):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrInvalidTransition):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": payout})
	}

	if !h.gateway.IsActive() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "payout service unreachable; try again later")
	}

	payout, err := h.gateway.UpdatePayoutStatus(id, req.Status, h.gateway.AdminToken())
	if err != nil {
		return gatewayError(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": payout})
}
