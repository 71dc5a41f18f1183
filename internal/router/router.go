package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nanashi-dev/nanashi/internal/handler"
	"github.com/nanashi-dev/nanashi/internal/middleware/metrics"
	"github.com/nanashi-dev/nanashi/internal/utils"
)

// New creates and configures the router with all API routes.
func New(h *handler.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)

	// setup CORS for the presentation layer
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	// The API is JSON end to end, errors included
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		utils.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		utils.WriteError(w, "Not found", http.StatusNotFound)
	})

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/boards", h.GetBoards)
	r.Get("/threads", h.ListThreads)
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{id}", h.GetThread)
	r.Post("/posts", h.CreatePost)

	return r
}
