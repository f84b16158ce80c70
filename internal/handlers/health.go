package handlers

import (
	"github.com/gofiber/fiber/v2"

	"paylink/internal/cache"
)

type HealthHandler struct {
	cache *cache.Service
}

func NewHealthHandler(cache *cache.Service) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	redisStatus := "disabled"
	if h.cache != nil {
		redisStatus = "connected"
		if err := h.cache.Ping(c.Context()); err != nil {
			redisStatus = "unreachable"
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"services": fiber.Map{
			"redis": redisStatus,
		},
	})
}
