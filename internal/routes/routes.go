// Package routes defines the API routing configuration. It wires the
// backend client, cache, services and handlers together and groups routes
// by surface: public checkout endpoints and authenticated merchant CRUD.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"paylink/internal/backend"
	"paylink/internal/cache"
	"paylink/internal/config"
	"paylink/internal/handlers"
	"paylink/internal/middleware"
	"paylink/internal/psp"
	"paylink/internal/services/checkout"
	"paylink/internal/services/paymentlink"
	"paylink/internal/validation"
)

// SetupRoutes configures all application routes. rdb may be nil, in which
// case the link cache is disabled.
func SetupRoutes(app *fiber.App, cfg *config.Config, rdb *redis.Client) {
	client := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)

	var linkCache *cache.Service
	var cacheDep paymentlink.Cache
	if rdb != nil {
		linkCache = cache.NewService(rdb, cfg.CacheTTL)
		cacheDep = linkCache
	}

	linkService := paymentlink.NewService(client, cacheDep, cfg.PublicBaseURL)

	var tokenizer checkout.Tokenizer
	if cfg.SimulatePSP {
		tokenizer = checkout.SimulatorTokenizer{Sim: psp.NewSimulator(cfg.SimulatorDelay)}
	} else {
		tokenizer = checkout.BackendTokenizer{Client: client}
	}

	validator := &validation.CardValidator{SkipLuhn: !cfg.LuhnCheck}
	checkoutService := checkout.NewService(linkService, tokenizer, client, validator)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	merchantHandler := handlers.NewMerchantHandler(linkService)
	healthHandler := handlers.NewHealthHandler(linkCache)

	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	co := api.Group("/checkout")
	co.Post("/:slug/session", checkoutHandler.CreateSession)
	co.Get("/session/:id", checkoutHandler.GetSession)
	co.Post("/session/:id/pay", checkoutHandler.Pay)
	co.Post("/session/:id/retry", checkoutHandler.Retry)
	co.Post("/session/:id/edit", checkoutHandler.EditField)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)
	links := api.Group("/payment-links", authMiddleware.Handler)
	links.Post("/", merchantHandler.CreatePaymentLink)
	links.Get("/", merchantHandler.ListPaymentLinks)
	links.Get("/:slug", merchantHandler.GetPaymentLink)
	links.Put("/:slug", merchantHandler.UpdatePaymentLink)
	links.Delete("/:slug", merchantHandler.DeletePaymentLink)
}
