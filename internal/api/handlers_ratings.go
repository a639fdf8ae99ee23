// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package api

import (
	"net/http"

	"github.com/cinerate/cinerate/internal/auth"
	"github.com/cinerate/cinerate/internal/models"
)

// ListMovieRatings handles GET /api/v1/ratings/movie/{movie_id}. Each rating
// carries the rater's demographic projection.
func (h *Handler) ListMovieRatings(w http.ResponseWriter, r *http.Request) {
	movieID, ok := uuidParam(w, r, "movie_id")
	if !ok {
		return
	}
	skip, limit := h.pagination(r)

	ratings, err := h.db.GetRatingsByMovie(r.Context(), movieID, skip, limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ratings)
}

// GetMovieRatingSummary handles GET /api/v1/ratings/movie/{movie_id}/stats.
// Anonymous-readable.
func (h *Handler) GetMovieRatingSummary(w http.ResponseWriter, r *http.Request) {
	movieID, ok := uuidParam(w, r, "movie_id")
	if !ok {
		return
	}

	summary, err := h.db.GetMovieRatingSummary(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// CreateRating handles POST /api/v1/ratings/. Re-rating the same movie
// updates the caller's existing rating in place.
func (h *Handler) CreateRating(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var body models.RatingCreate
	if !decodeBody(w, r, &body) {
		return
	}

	rating, err := h.db.UpsertRating(r.Context(), user.ID, &body)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rating)
}

// DeleteRating handles DELETE /api/v1/ratings/{rating_id}. Only the rating
// author or an admin may delete.
func (h *Handler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	ratingID, ok := uuidParam(w, r, "rating_id")
	if !ok {
		return
	}

	rating, err := h.db.GetRatingByID(r.Context(), ratingID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if rating.UserID != user.ID && !user.IsAdmin {
		respondDetail(w, http.StatusForbidden, "Not enough permissions")
		return
	}

	if err := h.db.DeleteRating(r.Context(), ratingID); err != nil {
		respondStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
