// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/cinerate/cinerate/internal/database"
	"github.com/cinerate/cinerate/internal/logging"
	"github.com/cinerate/cinerate/internal/validation"
)

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondDetail writes the standard {"detail": "<message>"} error body.
func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// respondStoreError maps store sentinel errors onto their fixed HTTP error
// bodies. Anything unmapped is an infrastructure failure and reports 500.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, database.ErrMovieNotFound):
		respondDetail(w, http.StatusNotFound, "Movie not found")
	case errors.Is(err, database.ErrUserNotFound):
		respondDetail(w, http.StatusNotFound, "User not found")
	case errors.Is(err, database.ErrRatingNotFound):
		respondDetail(w, http.StatusNotFound, "Rating not found")
	case errors.Is(err, database.ErrCommentNotFound):
		respondDetail(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, database.ErrEmailTaken):
		respondDetail(w, http.StatusBadRequest, "A user with this email already exists")
	case errors.Is(err, database.ErrUsernameTaken):
		respondDetail(w, http.StatusBadRequest, "A user with this username already exists")
	default:
		logging.Error().Err(err).Msg("Unhandled store error")
		respondDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeBody decodes a JSON request body into v and validates it. On failure
// the error response has already been written and false is returned.
// Malformed JSON yields 400; failed field validation yields 422.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validation.ValidateStruct(v); err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

// uuidParam extracts a UUID path parameter. Malformed values yield 400,
// distinct from the 404 an unknown-but-valid id produces.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := chi.URLParam(r, name)
	if _, err := uuid.Parse(raw); err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid "+name)
		return "", false
	}
	return raw, true
}

// pagination reads skip/limit query parameters, applying the configured
// default and maximum page sizes. Invalid values fall back to defaults.
func (h *Handler) pagination(r *http.Request) (skip, limit int) {
	limit = h.cfg.API.DefaultPageSize
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			skip = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > h.cfg.API.MaxPageSize {
		limit = h.cfg.API.MaxPageSize
	}
	return skip, limit
}
