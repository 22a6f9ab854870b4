package routes

import (
	"time"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/config"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/handlers"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/identity"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	idClient identity.Client,
	todoHandler *handlers.TodoHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	adminHandler *handlers.AdminHandler,
	webhookHandler *handlers.WebhookHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Every path outside the public allowlist requires a resolved caller.
	app.Use(middleware.Protected(cfg))

	// Public allowlist
	app.Get("/health", healthHandler.Check)
	app.Post("/webhook/register", webhookHandler.HandleRegister)

	// Owner-scoped todos
	app.Get("/todos", todoHandler.List)
	app.Post("/todos", todoHandler.Create)
	app.Put("/todos/:id", todoHandler.Update)
	app.Delete("/todos/:id", todoHandler.Delete)

	// Subscription (payment capture is a stub)
	app.Get("/subscription", subscriptionHandler.Status)
	app.Post("/subscription", subscriptionHandler.Subscribe)

	// Admin surface (role check on top of authentication)
	admin := app.Group("/admin", middleware.AdminRequired(idClient, cfg))
	admin.Get("/", adminHandler.Lookup)
	admin.Put("/", adminHandler.Update)
	admin.Delete("/", adminHandler.Delete)
}
