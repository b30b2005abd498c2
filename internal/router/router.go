package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"supermind-backend/internal/handlers"
	"supermind-backend/internal/middleware"
)

func New(
	logger zerolog.Logger,
	chatHandler *handlers.ChatHandler,
	dashboardHandler *handlers.DashboardHandler,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(allowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/chat", chatHandler.Chat)

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", dashboardHandler.Overview)
		r.Get("/metrics", dashboardHandler.Metrics)
		r.Get("/charts", dashboardHandler.Charts)
		r.Get("/charts/{id}", dashboardHandler.Chart)
	})

	return r
}
