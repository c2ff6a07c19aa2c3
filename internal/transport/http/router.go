// Package httptransport assembles the public router. It is thin plumbing:
// every route delegates to a domain handler, and cross-cutting concerns
// live in the shared middleware chain.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"hrms/internal/platform/metrics"
	"hrms/internal/platform/middleware"
	"hrms/internal/transport/http/shared"
)

// Registrar is anything that can attach routes to the router.
type Registrar interface {
	Register(r chi.Router)
}

// Pinger reports store reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options collects router construction inputs.
type Options struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	AllowedOrigins []string
	Store          Pinger
	Handlers       []Registrar
}

// NewRouter wires the middleware chain, health and metrics endpoints, and
// every domain handler.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Latency(opts.Metrics))

	r.Get("/", handleHealth(opts.Store))
	r.Get("/healthz", handleHealth(opts.Store))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		for _, h := range opts.Handlers {
			h.Register(api)
		}
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}

func handleHealth(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				shared.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
				})
				return
			}
		}
		shared.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "HRMS Lite API is running",
		})
	}
}
