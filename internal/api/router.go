package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/alexanderramin/praxis/internal/logger"
)

// requestTimeout bounds a whole request. Plan generation can hold an
// LLM call for up to a minute, so this sits well above the task
// timeouts.
const requestTimeout = 120 * time.Second

// NewRouter assembles the HTTP surface: the JSON API under /api/v1,
// a bare /health alias for probes, and the browser client at the root
// when one is supplied.
func NewRouter(api *API, ui http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}).Handler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/profile", api.CreateProfile)
		r.Get("/profile", api.GetProfile)

		r.Route("/plans", func(r chi.Router) {
			r.Post("/generate", api.GeneratePlan)
			r.Post("/adjust", api.AdjustPlan)
			r.Get("/", api.ListPlans)
			r.Get("/latest", api.LatestPlan)
			r.Get("/{weekID}", api.GetPlan)
		})

		r.Route("/reality-checks", func(r chi.Router) {
			r.Post("/", api.SubmitRealityCheck)
			r.Get("/history", api.GetHistory)
			r.Get("/history/{weekID}", api.GetHistoryEntry)
			r.Get("/{weekID}", api.GetDeviationReport)
		})

		r.Get("/status", api.GetStatus)
		r.Get("/health", api.Health)
	})

	r.Get("/health", api.Health)

	if ui != nil {
		r.Handle("/*", ui)
	}

	return r
}

// requestLogger emits one structured log line per request through the
// application logger instead of chi's stdlib logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
