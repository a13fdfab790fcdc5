package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/dkadris/storefront/internal/services"
)

// Session referral codes arrive on this header when the shopper followed a
// partner link.
const referralHeader = "X-Referral-Code"

// OrderHandler manages order intake endpoints.
type OrderHandler struct {
	orders *services.OrderService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Track records a custom-measurement order inquiry. The order is persisted
// locally no matter what; remote mirroring and the workshop notification are
// best effort and never block the response.
func (h *OrderHandler) Track(c *fiber.Ctx) error {
	var input services.OrderInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.orders.Submit(input, c.Get(referralHeader))
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.Is(err, services.ErrLengthRequired):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrProductNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.As(err, &validationErrs):
			return fiber.NewError(fiber.StatusBadRequest, validationErrs.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

// List returns all recorded orders for the admin dashboard, newest first.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.orders.List()})
}
