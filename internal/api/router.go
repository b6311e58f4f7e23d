// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

// Package api serves the playlist optimizer over HTTP.
//
// Every response uses one envelope:
//
//	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "request_id": "..."}}
//	{"status": "error", "data": null, "metadata": {...}, "error": {"code": "...", "message": "..."}}
//
// Routes:
//
//	GET    /api/v1/health/live
//	GET    /api/v1/health/ready
//	POST   /api/v1/playlists/optimize
//	POST   /api/v1/libraries
//	GET    /api/v1/libraries
//	GET    /api/v1/libraries/{id}
//	DELETE /api/v1/libraries/{id}
//	POST   /api/v1/libraries/{id}/optimize
//	GET    /metrics
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tomtom215/mixgraph/internal/middleware"
)

// Router wires the handler into a Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	logger        zerolog.Logger
}

// NewRouter creates a router. A nil config selects DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, config *ChiMiddlewareConfig, logger zerolog.Logger) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(config),
		logger:        logger,
	}
}

// SetupChi builds the HTTP handler.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(router.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// Health probes are not rate limited
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	throttle := router.chiMiddleware.Throttle()

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.With(throttle).Post("/playlists/optimize", router.handler.OptimizePlaylist)

		r.Route("/libraries", func(r chi.Router) {
			r.Post("/", router.handler.CreateLibrary)
			r.Get("/", router.handler.ListLibraries)
			r.Get("/{id}", router.handler.GetLibrary)
			r.Delete("/{id}", router.handler.DeleteLibrary)
			r.With(throttle).Post("/{id}/optimize", router.handler.OptimizeLibrary)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
