// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/cinerate/cinerate/internal/logging"
)

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Movie Rating API"})
}

// Health handles GET /api/v1/health: process liveness and uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "healthy",
		"uptime_seconds": int(time.Since(h.startTime).Seconds()),
	})
}

// Ready handles GET /api/v1/health/ready: reports 503 until the database
// answers a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logging.Warn().Err(err).Msg("Readiness check failed")
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
