package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/dkadris/storefront/internal/config"
	"github.com/dkadris/storefront/internal/middleware"
	"github.com/dkadris/storefront/internal/services"
	"github.com/dkadris/storefront/internal/utils"
)

// AffiliateHandler serves the partner program endpoints. When the worker is
// reachable, account operations are proxied to it; standalone deployments
// are served from the local referral engine.
type AffiliateHandler struct {
	affiliates *services.AffiliateService
	payouts    *services.PayoutService
	gateway    *services.WorkerGateway
	cfg        *config.Config
}

// NewAffiliateHandler constructs AffiliateHandler.
func NewAffiliateHandler(affiliates *services.AffiliateService, payouts *services.PayoutService, gateway *services.WorkerGateway, cfg *config.Config) *AffiliateHandler {
	return &AffiliateHandler{affiliates: affiliates, payouts: payouts, gateway: gateway, cfg: cfg}
}

func (h *AffiliateHandler) remoteMode() bool {
	return h.gateway.Configured() && h.gateway.IsActive()
}

// Signup registers a new partner account.
func (h *AffiliateHandler) Signup(c *fiber.Ctx) error {
	var input services.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if h.remoteMode() {
		err := h.gateway.AffiliateSignup(services.AffiliateSignupPayload{
			Name:           input.Name,
			Email:          input.Email,
			Password:       input.Password,
			ReferrerCode:   input.ReferrerCode,
			PolicyAccepted: input.PolicyAccepted,
		})
		if err != nil {
			return gatewayError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Account created. Check your inbox to verify your email.",
		})
	}

	affiliate, err := h.affiliates.Signup(input)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.Is(err, services.ErrTermsNotAccepted), errors.Is(err, services.ErrSelfReferral):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		case errors.As(err, &validationErrs):
			return fiber.NewError(fiber.StatusBadRequest, validationErrs.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": affiliate.Sanitized()})
}

type affiliateLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a partner and issues a session token.
func (h *AffiliateHandler) Login(c *fiber.Ctx) error {
	var req affiliateLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if h.remoteMode() {
		session, err := h.gateway.AffiliateLogin(req.Email, req.Password)
		if err != nil {
			return gatewayError(err)
		}
		return c.JSON(fiber.Map{"success": true, "token": session.Token, "user": session.User.Sanitized()})
	}

	affiliate, err := h.affiliates.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, affiliate.Email, utils.RoleAffiliate, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "token": token, "user": affiliate.Sanitized()})
}

// Stats returns the authenticated partner's dashboard: earnings, threshold
// progress and attributed orders.
func (h *AffiliateHandler) Stats(c *fiber.Ctx) error {
	if h.remoteMode() {
		affiliate, err := h.gateway.AffiliateStats(middleware.BearerToken(c))
		if err != nil {
			return gatewayError(err)
		}
		return c.JSON(fiber.Map{"success": true, "data": affiliate.Sanitized()})
	}

	email, ok := middleware.AffiliateSubject(c, h.cfg)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "affiliate token required")
	}

	stats, err := h.affiliates.Stats(email)
	if err != nil {
		if errors.Is(err, services.ErrAffiliateNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// Verify confirms a partner's email address. The verification token arrives
// as a query parameter (the link target from the confirmation email); a
// bearer header works too for logged-in accounts.
func (h *AffiliateHandler) Verify(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		token = middleware.BearerToken(c)
	}

	if h.remoteMode() {
		if err := h.gateway.VerifyEmail(token); err != nil {
			return gatewayError(err)
		}
		return c.JSON(fiber.Map{"success": true, "message": "Email verified."})
	}

	email, role, err := utils.ParseToken(h.cfg.JWTSecret, token)
	if err != nil || role != utils.RoleAffiliate {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid verification token")
	}

	if err := h.affiliates.Verify(email); err != nil {
		if errors.Is(err, services.ErrAffiliateNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Email verified."})
}

// RequestPayout opens a payout request for the authenticated partner once the
// earnings threshold is reached.
func (h *AffiliateHandler) RequestPayout(c *fiber.Ctx) error {
	email, ok := middleware.AffiliateSubject(c, h.cfg)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "affiliate token required")
	}

	stats, err := h.affiliates.Stats(email)
	if err != nil {
		if errors.Is(err, services.ErrAffiliateNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	payout, err := h.payouts.Request(stats.Affiliate, stats.Earnings)
	if err != nil {
		if errors.Is(err, services.ErrNotEligible) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payout})
}

// gatewayError maps an upstream worker failure onto a client-facing error,
// preserving the worker's status code and message when available.
func gatewayError(err error) error {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		return fiber.NewError(apiErr.Status, apiErr.Message)
	}
	return fiber.NewError(fiber.StatusBadGateway, "upstream service unavailable")
}
