package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/HBortolim/btg-challenge/app"
	"github.com/HBortolim/btg-challenge/handlers"
)

// SetupRoutes configures all application routes and middleware.
// /auth and the health endpoints are public; everything else requires
// a valid bearer token.
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoints
	r.Get("/healthz", handlers.Liveness)
	r.Get("/readyz", handlers.Readiness(deps.DB))

	// Public auth endpoints
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", deps.AuthHandler.Register)
		r.Post("/login", deps.AuthHandler.Login)
	})

	// Friend management
	r.Route("/friends", func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.Post("/", deps.FriendHandler.Create)
		r.Get("/", deps.FriendHandler.List)
		r.Get("/{id}", deps.FriendHandler.Get)
		r.Put("/{id}", deps.FriendHandler.Update)
		r.Delete("/{id}", deps.FriendHandler.Delete)
	})

	// Game catalog
	r.Route("/games", func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.Post("/", deps.GameHandler.Create)
		r.Get("/", deps.GameHandler.List)
		r.Get("/{id}", deps.GameHandler.Get)
		r.Put("/{id}", deps.GameHandler.Update)
		r.Delete("/{id}", deps.GameHandler.Delete)
	})

	// Loans
	r.Route("/loans", func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)
		r.Post("/", deps.LoanHandler.Create)
		r.Get("/", deps.LoanHandler.List)
		r.Put("/{id}/return", deps.LoanHandler.Return)
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
