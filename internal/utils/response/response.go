package response

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "paylink/internal/errors"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// FromError maps a service error onto an HTTP response, always surfacing a
// {message, code} body for structured errors.
func FromError(c *fiber.Ctx, err error) error {
	if errors.Is(err, apperrors.ErrNoConnection) {
		return Error(c, fiber.StatusBadGateway, apperrors.ErrNoConnection.Error())
	}

	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		status := fiber.StatusBadRequest
		switch domainErr.Code {
		case apperrors.CodeSessionNotFound:
			status = fiber.StatusNotFound
		case apperrors.CodeLinkNotPayable:
			status = fiber.StatusConflict
		}

		body := fiber.Map{"message": domainErr.Message}
		if domainErr.Code != "" {
			body["code"] = domainErr.Code
		}
		return c.Status(status).JSON(body)
	}

	return ServerError(c, err.Error())
}
