package handlers

import (
	"github.com/gofiber/fiber/v2"

	"paylink/internal/models"
	"paylink/internal/services/checkout"
	"paylink/internal/utils/response"
)

type CheckoutHandler struct {
	service checkout.Service
}

func NewCheckoutHandler(service checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// CreateSession opens a checkout session for a payment link slug.
func (h *CheckoutHandler) CreateSession(c *fiber.Ctx) error {
	view, err := h.service.CreateSession(c.Context(), c.Params("slug"))
	if err != nil {
		return response.FromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetSession returns the current state of a checkout session.
func (h *CheckoutHandler) GetSession(c *fiber.Ctx) error {
	view, err := h.service.Session(c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(view)
}

// Pay submits card data for one checkout attempt.
func (h *CheckoutHandler) Pay(c *fiber.Ctx) error {
	var card models.CardInput
	if err := c.BodyParser(&card); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	view, err := h.service.Pay(c.Context(), c.Params("id"), card)
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(view)
}

// Retry replays the last submitted card data after an error outcome.
func (h *CheckoutHandler) Retry(c *fiber.Ctx) error {
	view, err := h.service.Retry(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(view)
}

// EditField reports that the payer edited a card field, clearing that
// field's standing error and the general error.
func (h *CheckoutHandler) EditField(c *fiber.Ctx) error {
	var input struct {
		Field string `json:"field"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}

	view, err := h.service.EditField(c.Params("id"), canonicalField(input.Field))
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(view)
}

// canonicalField maps the card form's input names onto the field-error keys.
func canonicalField(field string) string {
	switch field {
	case "expMonth":
		return models.FieldMonth
	case "expYear":
		return models.FieldYear
	default:
		return field
	}
}
