package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/remedia-ai/remedia/internal/api/handlers"
	"github.com/remedia-ai/remedia/internal/api/middleware"
)

type RouterConfig struct {
	SearchHandler *handlers.SearchHandler
	StatsHandler  *handlers.StatsHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/", cfg.StatsHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", cfg.StatsHandler.Stats)
		r.Post("/search", cfg.SearchHandler.Search)
		r.Post("/chat", cfg.SearchHandler.Chat)
	})

	return r
}
