package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/BERSERKRobot/chess-website-v2/internal/api/dto"
	"github.com/BERSERKRobot/chess-website-v2/internal/service"
)

// ContactHandler exposes the contact form endpoint.
type ContactHandler struct {
	contact *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contactService}
}

// Submit handles POST /api/v1/contact.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result := h.contact.Send(c.UserContext(), req.ToDomain())
	return c.JSON(result)
}
