package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BERSERKRobot/chess-website-v2/internal/api/dto"
	"github.com/BERSERKRobot/chess-website-v2/internal/service"
)

// OrdersHandler exposes the owner-facing order ledger.
type OrdersHandler struct {
	checkout *service.CheckoutService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(checkoutService *service.CheckoutService) *OrdersHandler {
	return &OrdersHandler{checkout: checkoutService}
}

// List handles GET /api/v1/orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	orders, err := h.checkout.ListOrders(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.NewOrderResponses(orders),
	})
}
