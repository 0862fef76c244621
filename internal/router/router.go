package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/rideon-dev/rideon/internal/middleware"
	"github.com/rideon-dev/rideon/internal/middleware/metrics"
	rl "github.com/rideon-dev/rideon/internal/middleware/ratelimiter"
	"github.com/rideon-dev/rideon/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	// Credential endpoints share one per-IP limiter to slow brute force.
	credsLimiter := rl.New(1, 5, 1*time.Hour)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit(credsLimiter, mw.GetIP))
			r.Post("/register", h.RegisterUser)
			r.Post("/login", h.LoginUser)
		})
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireUser())
			r.Get("/profile", h.UserProfile)
			r.Get("/logout", h.LogoutUser)
		})
	})

	r.Route("/captains", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit(credsLimiter, mw.GetIP))
			r.Post("/register", h.RegisterCaptain)
			r.Post("/login", h.LoginCaptain)
		})
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireCaptain())
			r.Get("/profile", h.CaptainProfile)
			r.Get("/logout", h.LogoutCaptain)
		})
	})

	return r
}
