// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package api

import "net/http"

// GetMovieStatistics handles GET /api/v1/statistics/movie/{movie_id}:
// the full per-movie aggregate with the four demographic breakdowns.
// Anonymous-readable.
func (h *Handler) GetMovieStatistics(w http.ResponseWriter, r *http.Request) {
	movieID, ok := uuidParam(w, r, "movie_id")
	if !ok {
		return
	}

	stats, err := h.db.GetMovieStatistics(r.Context(), movieID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
