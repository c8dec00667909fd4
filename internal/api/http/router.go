package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/schedule-service/internal/api/http/handlers"
	"github.com/spec-kit/schedule-service/internal/auth"
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Staffers       *handlers.StaffersHandler
	Team           *handlers.TeamHandler
	Requests       *handlers.RequestsHandler
	Availability   *handlers.AvailabilityHandler
	Assignments    *handlers.AssignmentsHandler
	Calendar       *handlers.CalendarHandler
	Metrics        *observability.Metrics
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	protected.Get("/me", cfg.Auth.Me)

	protected.Get("/staffers", cfg.Staffers.List)
	protected.Get("/staffers/:id", cfg.Staffers.Get)

	team := protected.Group("/team/members", auth.RequireRole(domain.RoleExecutive, domain.RoleAdmin))
	team.Get("/", cfg.Team.List)
	team.Post("/", cfg.Team.Add)
	team.Delete("/:stafferId", cfg.Team.Remove)

	protected.Get("/requests", cfg.Requests.List)
	protected.Post("/requests", cfg.Requests.Create)
	protected.Get("/requests/:id", cfg.Requests.Get)
	protected.Patch("/requests/:id", cfg.Requests.Update)
	protected.Delete("/requests/:id", cfg.Requests.Delete)
	protected.Post("/requests/:id/approve", cfg.Requests.Approve)
	protected.Post("/requests/:id/deny", cfg.Requests.Deny)
	protected.Post("/requests/:id/assign", cfg.Requests.Assign)

	protected.Get("/availability", cfg.Availability.List)
	protected.Get("/availability/overview", cfg.Availability.Overview)
	protected.Get("/availability/:date/can-request", cfg.Availability.CanRequest)
	protected.Put("/availability/:date", cfg.Availability.Set)
	protected.Delete("/availability/:date", cfg.Availability.Delete)

	protected.Get("/assignments", cfg.Assignments.List)
	protected.Post("/assignments", cfg.Assignments.Create)
	protected.Patch("/assignments/:id", cfg.Assignments.Update)
	protected.Delete("/assignments/:id", cfg.Assignments.Delete)
	protected.Get("/assignments/:id/invitations", cfg.Assignments.Invitations)
	protected.Post("/assignments/:id/accept", cfg.Assignments.Accept)
	protected.Post("/assignments/:id/reject", cfg.Assignments.Reject)
	protected.Post("/assignments/:id/complete", cfg.Assignments.Complete)
	protected.Post("/invitations/:id/respond", cfg.Assignments.RespondToInvitation)

	protected.Get("/calendar", cfg.Calendar.Calendar)
	reports := protected.Group("/reports", auth.RequireRole(domain.RoleAdmin, domain.RoleExecutive, domain.RoleSectionHead))
	reports.Get("/completed", cfg.Calendar.Completed)
	reports.Get("/rejected", cfg.Calendar.Rejected)

	protected.Get("/events", cfg.Calendar.Events)
	protected.Post("/events", cfg.Calendar.CreateEvent)
}
