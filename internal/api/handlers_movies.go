// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package api

import (
	"net/http"
	"strconv"

	"github.com/cinerate/cinerate/internal/auth"
	"github.com/cinerate/cinerate/internal/logging"
	"github.com/cinerate/cinerate/internal/models"
)

// requireAdmin writes a 403 and returns false unless the current user is an
// admin.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	user := auth.UserFromContext(r.Context())
	if user == nil || !user.IsAdmin {
		respondDetail(w, http.StatusForbidden, "Not enough permissions")
		return false
	}
	return true
}

// ListMovies handles GET /api/v1/movies/. Supports title, genre, director
// and year filters plus skip/limit pagination.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	skip, limit := h.pagination(r)
	filter := &models.MovieFilter{
		Title:    q.Get("title"),
		Genre:    q.Get("genre"),
		Director: q.Get("director"),
		Skip:     skip,
		Limit:    limit,
	}
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			respondDetail(w, http.StatusBadRequest, "Invalid year")
			return
		}
		filter.Year = year
	}

	movies, err := h.db.ListMovies(r.Context(), filter)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, movies)
}

// CreateMovie handles POST /api/v1/movies/ (admin only).
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var body models.MovieCreate
	if !decodeBody(w, r, &body) {
		return
	}

	movie, err := h.db.CreateMovie(r.Context(), &body)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	logging.Info().Str("movie_id", movie.ID).Str("title", movie.Title).Msg("Movie created")
	respondJSON(w, http.StatusOK, movie)
}

// GetMovie handles GET /api/v1/movies/{movie_id}.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := uuidParam(w, r, "movie_id")
	if !ok {
		return
	}

	movie, err := h.db.GetMovieByID(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, movie)
}

// UpdateMovie handles PUT /api/v1/movies/{movie_id} (admin only).
func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	movieID, ok := uuidParam(w, r, "movie_id")
	if !ok {
		return
	}

	var body models.MovieUpdate
	if !decodeBody(w, r, &body) {
		return
	}

	movie, err := h.db.UpdateMovie(r.Context(), movieID, &body)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, movie)
}

// DeleteMovie handles DELETE /api/v1/movies/{movie_id} (admin only).
// Deleting a movie removes its ratings and comments as well.
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	movieID, ok := uuidParam(w, r, "movie_id")
	if !ok {
		return
	}

	if err := h.db.DeleteMovie(r.Context(), movieID); err != nil {
		respondStoreError(w, err)
		return
	}

	logging.Info().Str("movie_id", movieID).Msg("Movie deleted")
	w.WriteHeader(http.StatusNoContent)
}
