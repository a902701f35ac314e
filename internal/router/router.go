package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cashflow-api/internal/config"
	"cashflow-api/internal/handler"
	"cashflow-api/internal/i18n"
	"cashflow-api/internal/middleware"
	"cashflow-api/internal/model"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Expense *handler.ExpenseHandler
	Health  *handler.HealthHandler
}

// Paths that accept credentials share the stricter rate limit.
const (
	loginPath    = "/api/v1/login"
	registerPath = "/api/v1/users"
)

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	locale := i18n.ParseDefault(cfg.DefaultLocale)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM, loginPath, registerPath)

	if cfg.TrustProxyHeaders {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(middleware.Locale(locale))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.NotFound(handler.RouteNotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", h.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout, locale))

		api.Post("/login", h.Auth.Login)

		api.Route("/users", func(users chi.Router) {
			users.Post("/", h.User.Register)
			users.With(authMiddleware.RequireAuth).Get("/me", h.User.Me)
		})

		api.Route("/expenses", func(expenses chi.Router) {
			expenses.Use(authMiddleware.RequireAuth)
			expenses.Use(authMiddleware.RequireRoles(model.RoleAdmin, model.RoleTeamMember))

			expenses.Post("/", h.Expense.Create)
			expenses.Get("/", h.Expense.List)
			expenses.Get("/{id:[0-9]+}", h.Expense.Get)
			expenses.Put("/{id:[0-9]+}", h.Expense.Update)
			expenses.Delete("/{id:[0-9]+}", h.Expense.Delete)
		})
	})

	return r
}
