package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/support-bot/internal/api/http/handlers"
	"github.com/spec-kit/support-bot/internal/auth"
	"github.com/spec-kit/support-bot/internal/config"
	"github.com/spec-kit/support-bot/internal/observability"
	"github.com/spec-kit/support-bot/internal/service"
)

// RouterDependencies bundles everything the admin API needs.
type RouterDependencies struct {
	Config  *config.Config
	Support *service.SupportService
	Reviews *service.ReviewService
	Tokens  *auth.TokenManager
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// NewApp builds the fiber application with all routes registered.
func NewApp(deps RouterDependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.Config.App.Name,
		ReadTimeout:  deps.Config.App.RequestTimeout(),
		WriteTimeout: deps.Config.App.RequestTimeout(),
		ErrorHandler: ErrorHandler(deps.Logger, deps.Metrics),
	})

	app.Use(Recover(deps.Logger))
	app.Use(observability.RequestLogger(deps.Logger, deps.Metrics))

	health := handlers.NewHealthHandler(deps.Config.App.Version, deps.Config.Storage.DataDir)
	app.Get("/health/live", health.Live)
	app.Get("/health/ready", health.Ready)

	authHandler := handlers.NewAuthHandler(deps.Tokens, deps.Config.Auth)
	app.Post("/auth/login", authHandler.Login)

	admin := app.Group("/admin", auth.RequireAdmin(deps.Tokens))

	tickets := handlers.NewAdminTicketsHandler(deps.Support)
	admin.Get("/tickets", tickets.List)
	admin.Get("/tickets/:id", tickets.Get)
	admin.Post("/tickets/:id/responses", tickets.Respond)
	admin.Post("/tickets/:id/resolve", tickets.Resolve)
	admin.Patch("/tickets/:id/status", tickets.UpdateStatus)

	stats := handlers.NewAdminStatsHandler(deps.Support, deps.Reviews)
	admin.Get("/stats/support", stats.SupportStats)
	admin.Get("/stats/reviews", stats.ReviewStats)
	admin.Get("/reviews", stats.ListReviews)
	admin.Delete("/reviews/:id", stats.DeleteReview)
	admin.Put("/settings/auto-responses", stats.SetAutoResponses)

	return app
}
