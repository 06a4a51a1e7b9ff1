package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/api/http/handlers"
	"github.com/spec-kit/church-cms/internal/auth"
	"github.com/spec-kit/church-cms/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Admin          *handlers.AdminHandler
	Subscribers    *handlers.SubscribersHandler
	Messages       *handlers.MessagesHandler
	Ministry       *handlers.MinistryHandler
	Sermons        *handlers.SermonsHandler
	Events         *handlers.EventsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/health", cfg.Health.Live)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Get("/me", cfg.Auth.Me)
	authProtected.Put("/profile", cfg.Auth.UpdateProfile)
	authProtected.Put("/change-password", cfg.Auth.ChangePassword)

	subscribers := api.Group("/subscribers")
	subscribers.Post("/subscribe", cfg.Subscribers.Subscribe)
	subscribers.Post("/unsubscribe", cfg.Subscribers.Unsubscribe)
	subscribers.Get("", cfg.AuthMiddleware.Handle, cfg.Subscribers.List)
	subscribers.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Subscribers.Delete)
	subscribers.Post("/newsletter",
		cfg.AuthMiddleware.Handle,
		auth.RequireRole(domain.AdminRoleAdmin, domain.AdminRoleSuperadmin),
		cfg.Subscribers.SendNewsletter)
	subscribers.Get("/newsletter/history", cfg.AuthMiddleware.Handle, cfg.Subscribers.NewsletterHistory)
	subscribers.Get("/newsletter/:id", cfg.AuthMiddleware.Handle, cfg.Subscribers.GetNewsletter)

	api.Get("/admin/dashboard", cfg.AuthMiddleware.Handle, cfg.Admin.Dashboard)

	messages := api.Group("/messages")
	messages.Post("", cfg.Messages.Submit)
	messages.Get("", cfg.AuthMiddleware.Handle, cfg.Messages.List)
	messages.Get("/:id", cfg.AuthMiddleware.Handle, cfg.Messages.Get)
	messages.Post("/:id/reply", cfg.AuthMiddleware.Handle, cfg.Messages.Reply)
	messages.Patch("/:id/status", cfg.AuthMiddleware.Handle, cfg.Messages.UpdateStatus)
	messages.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Messages.Delete)

	ministry := api.Group("/ministry")
	ministry.Post("/requests", cfg.Ministry.SubmitRequest)
	ministry.Get("/requests", cfg.AuthMiddleware.Handle, cfg.Ministry.ListRequests)
	ministry.Post("/requests/:id/approve", cfg.AuthMiddleware.Handle, cfg.Ministry.ApproveRequest)
	ministry.Post("/requests/:id/decline", cfg.AuthMiddleware.Handle, cfg.Ministry.DeclineRequest)
	ministry.Get("/members", cfg.AuthMiddleware.Handle, cfg.Ministry.ListMembers)
	ministry.Delete("/members/:id", cfg.AuthMiddleware.Handle, cfg.Ministry.DeleteMember)
	ministry.Get("/statistics", cfg.AuthMiddleware.Handle, cfg.Ministry.Statistics)

	sermons := api.Group("/sermons")
	sermons.Get("", cfg.AuthMiddleware.HandleOptional, cfg.Sermons.List)
	sermons.Get("/:id", cfg.Sermons.Get)
	sermons.Post("/:id/download", cfg.Sermons.RecordDownload)
	sermons.Post("", cfg.AuthMiddleware.Handle, cfg.Sermons.Create)
	sermons.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Sermons.Update)
	sermons.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Sermons.Delete)

	events := api.Group("/events")
	events.Get("", cfg.AuthMiddleware.HandleOptional, cfg.Events.List)
	events.Get("/:id", cfg.Events.Get)
	events.Post("", cfg.AuthMiddleware.Handle, cfg.Events.Create)
	events.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Events.Update)
	events.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Events.Delete)
}
