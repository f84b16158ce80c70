package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"paylink/internal/models"
	"paylink/internal/services/paymentlink"
	"paylink/internal/utils/response"
)

// MerchantHandler proxies the merchant-side payment-link CRUD to the
// upstream backend. Payloads pass through as-is; failures surface the
// backend's {message, code}.
type MerchantHandler struct {
	links paymentlink.Service
}

func NewMerchantHandler(links paymentlink.Service) *MerchantHandler {
	return &MerchantHandler{links: links}
}

func (h *MerchantHandler) CreatePaymentLink(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.MerchantClaims)

	var input models.CreatePaymentLinkRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if input.MerchantID == 0 {
		input.MerchantID = claims.MerchantID
	}

	link, err := h.links.Create(c.Context(), &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *MerchantHandler) GetPaymentLink(c *fiber.Ctx) error {
	link, err := h.links.Get(c.Context(), c.Params("slug"))
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(link)
}

func (h *MerchantHandler) ListPaymentLinks(c *fiber.Ctx) error {
	var merchantID *int64
	if raw := c.Query("merchantId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "invalid merchantId")
		}
		merchantID = &id
	}

	links, err := h.links.List(c.Context(), merchantID)
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(links)
}

func (h *MerchantHandler) UpdatePaymentLink(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.MerchantClaims)

	var input models.UpdatePaymentLinkRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request format")
	}
	if input.MerchantID == 0 {
		input.MerchantID = claims.MerchantID
	}

	link, err := h.links.Update(c.Context(), c.Params("slug"), &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(link)
}

func (h *MerchantHandler) DeletePaymentLink(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.MerchantClaims)

	merchantID := claims.MerchantID
	if raw := c.Query("merchantId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "invalid merchantId")
		}
		merchantID = id
	}

	if err := h.links.Delete(c.Context(), c.Params("slug"), merchantID); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "payment link deleted", nil)
}
