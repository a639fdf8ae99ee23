// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cinerate/cinerate/internal/auth"
	"github.com/cinerate/cinerate/internal/config"
	"github.com/cinerate/cinerate/internal/middleware"
)

// NewRouter builds the chi router with the full middleware chain and route
// table. Read endpoints for users, movies, comments, ratings and statistics
// are anonymous; every write, and the current-user pair, requires a bearer
// token.
func NewRouter(h *Handler, cfg *config.Config, authMW *auth.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.PrometheusMetrics)
	if !cfg.Security.RateLimitDisabled {
		r.Use(httprate.LimitByIP(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow))
	}

	r.Get("/", h.Root)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/health/ready", h.Ready)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			// Stricter limit on login to slow down credential stuffing.
			r.Group(func(r chi.Router) {
				if !cfg.Security.RateLimitDisabled {
					r.Use(httprate.LimitByIP(cfg.Security.LoginRateLimitReqs, cfg.Security.LoginRateLimitWin))
				}
				r.Post("/login", h.Login)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authMW.Authenticate)
				r.Get("/me", h.GetCurrentUser)
				r.Put("/me", h.UpdateCurrentUser)
			})
			r.Get("/{user_id}", h.GetUser)
		})

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", h.ListMovies)
			r.Get("/{movie_id}", h.GetMovie)
			r.Group(func(r chi.Router) {
				r.Use(authMW.Authenticate)
				r.Post("/", h.CreateMovie)
				r.Put("/{movie_id}", h.UpdateMovie)
				r.Delete("/{movie_id}", h.DeleteMovie)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/movie/{movie_id}", h.ListMovieComments)
			r.Group(func(r chi.Router) {
				r.Use(authMW.Authenticate)
				r.Post("/", h.CreateComment)
				r.Put("/{comment_id}", h.UpdateComment)
				r.Delete("/{comment_id}", h.DeleteComment)
			})
		})

		r.Route("/ratings", func(r chi.Router) {
			r.Get("/movie/{movie_id}", h.ListMovieRatings)
			r.Get("/movie/{movie_id}/stats", h.GetMovieRatingSummary)
			r.Group(func(r chi.Router) {
				r.Use(authMW.Authenticate)
				r.Post("/", h.CreateRating)
				r.Delete("/{rating_id}", h.DeleteRating)
			})
		})

		r.Get("/statistics/movie/{movie_id}", h.GetMovieStatistics)
	})

	return r
}
