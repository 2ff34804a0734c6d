package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ujwal2946/student-mark-prediction/internal/events"
	"github.com/ujwal2946/student-mark-prediction/internal/history"
	"github.com/ujwal2946/student-mark-prediction/internal/scoring"
)

func NewRouter(s *history.Store, sc *scoring.Scorer, ev events.Client, revealDelay time.Duration, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	if sc.Kind() == "heuristic" {
		fallbackActive.Set(1)
	} else {
		fallbackActive.Set(0)
	}

	predictions := NewPredictionsHandler(s, sc, ev, revealDelay, logger)
	insights := NewInsightsHandler(s)
	admin := NewAdminHandler(s, sc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/predictions", predictions.Create)
		r.Get("/predictions", predictions.List)
		r.Delete("/predictions", predictions.Clear)
		r.Get("/predictions/{index}", predictions.Get)
		r.Delete("/predictions/{index}", predictions.Delete)
		r.Post("/predictions/{index}/favorite", predictions.ToggleFavorite)
		r.Get("/predictions/{index}/analysis", insights.Analyze)

		r.Get("/favorites", func(w http.ResponseWriter, req *http.Request) {
			q := req.URL.Query()
			q.Set("favorites", "true")
			req.URL.RawQuery = q.Encode()
			predictions.List(w, req)
		})

		r.Get("/compare", insights.Compare)
		r.Get("/defaults", insights.Defaults)
		r.Get("/history/export", insights.Export)
		r.Post("/history/import", insights.Import)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
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
