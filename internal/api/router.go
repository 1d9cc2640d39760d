package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/somosintegros/diagnostico/internal/events"
	"github.com/somosintegros/diagnostico/internal/store"
	"github.com/somosintegros/diagnostico/internal/tagger"
)

func NewRouter(s store.Store, t tagger.Client, e events.Client, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))
	r.Use(RateLimitMiddleware(120))

	leads := NewLeadsHandler(s, t, e, logger)
	quiz := NewQuizHandler()

	r.Post("/api/leads", leads.Create)
	r.Get("/api/quiz", quiz.Get)

	r.Group(func(r chi.Router) {
		r.Use(AdminAuthMiddleware(adminToken))
		r.Get("/api/leads", leads.List)
		r.Get("/api/leads/{id}", leads.Get)
		r.Get("/api/stats", leads.Stats)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
