package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BERSERKRobot/chess-website-v2/internal/catalog"
	"github.com/BERSERKRobot/chess-website-v2/internal/config"
)

// PlansHandler serves the static plan catalog and public client config.
type PlansHandler struct {
	stripe config.StripeConfig
}

// NewPlansHandler constructs handler.
func NewPlansHandler(stripeCfg config.StripeConfig) *PlansHandler {
	return &PlansHandler{stripe: stripeCfg}
}

// List handles GET /api/v1/plans.
func (h *PlansHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": catalog.Plans(),
	})
}

// ClientConfig handles GET /api/v1/config. Only the publishable key is
// exposed; the secret key never leaves the server.
func (h *PlansHandler) ClientConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"stripe_publishable_key": h.stripe.PublishableKey,
		},
	})
}
