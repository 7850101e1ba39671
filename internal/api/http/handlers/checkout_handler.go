package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/BERSERKRobot/chess-website-v2/internal/api/dto"
	"github.com/BERSERKRobot/chess-website-v2/internal/service"
)

// CheckoutHandler exposes the wizard and payment endpoints.
type CheckoutHandler struct {
	checkout *service.CheckoutService
}

// NewCheckoutHandler constructs handler.
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkoutService}
}

// StartSession handles POST /api/v1/checkout/sessions.
func (h *CheckoutHandler) StartSession(c *fiber.Ctx) error {
	session, err := h.checkout.StartSession(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewSessionResponse(session, false),
	})
}

// GetSession handles GET /api/v1/checkout/sessions/:id.
func (h *CheckoutHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.checkout.GetSession(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.NewSessionResponse(session, false),
	})
}

// SelectPlan handles POST /api/v1/checkout/sessions/:id/plan.
func (h *CheckoutHandler) SelectPlan(c *fiber.Ctx) error {
	var req dto.SelectPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	session, err := h.checkout.SelectPlan(c.UserContext(), c.Params("id"), req.PlanID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.NewSessionResponse(session, false),
	})
}

// SetDetails handles PUT /api/v1/checkout/sessions/:id/details.
func (h *CheckoutHandler) SetDetails(c *fiber.Ctx) error {
	var req dto.CustomerDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	session, err := h.checkout.SetDetails(c.UserContext(), c.Params("id"), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.NewSessionResponse(session, false),
	})
}

// Advance handles POST /api/v1/checkout/sessions/:id/advance. Validation
// failures come back as a field-keyed error map with the state unchanged.
func (h *CheckoutHandler) Advance(c *fiber.Ctx) error {
	session, fieldErrs, err := h.checkout.Advance(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"errors":  fieldErrs,
			"data":    dto.NewSessionResponse(session, false),
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewSessionResponse(session, true),
	})
}

// Retreat handles POST /api/v1/checkout/sessions/:id/retreat.
func (h *CheckoutHandler) Retreat(c *fiber.Ctx) error {
	session, err := h.checkout.Retreat(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewSessionResponse(session, true),
	})
}

// CreatePaymentIntent handles POST /api/v1/checkout/sessions/:id/payment-intent.
func (h *CheckoutHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	result, err := h.checkout.PaymentIntentForSession(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ConfirmPayment handles GET /api/v1/checkout/confirm?payment_intent=...
func (h *CheckoutHandler) ConfirmPayment(c *fiber.Ctx) error {
	result := h.checkout.ConfirmPayment(c.UserContext(), c.Query("payment_intent"))
	return c.JSON(result)
}
