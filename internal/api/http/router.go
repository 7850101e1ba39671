package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BERSERKRobot/chess-website-v2/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Plans    *handlers.PlansHandler
	Checkout *handlers.CheckoutHandler
	Contact  *handlers.ContactHandler
	Orders   *handlers.OrdersHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")
	api.Get("/plans", cfg.Plans.List)
	api.Get("/config", cfg.Plans.ClientConfig)

	sessions := api.Group("/checkout/sessions")
	sessions.Post("/", cfg.Checkout.StartSession)
	sessions.Get("/:id", cfg.Checkout.GetSession)
	sessions.Post("/:id/plan", cfg.Checkout.SelectPlan)
	sessions.Put("/:id/details", cfg.Checkout.SetDetails)
	sessions.Post("/:id/advance", cfg.Checkout.Advance)
	sessions.Post("/:id/retreat", cfg.Checkout.Retreat)
	sessions.Post("/:id/payment-intent", cfg.Checkout.CreatePaymentIntent)

	api.Get("/checkout/confirm", cfg.Checkout.ConfirmPayment)

	api.Get("/orders", cfg.Orders.List)

	api.Post("/contact", cfg.Contact.Submit)
}
