// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package api

import (
	"errors"
	"net/http"

	"github.com/cinerate/cinerate/internal/auth"
	"github.com/cinerate/cinerate/internal/database"
	"github.com/cinerate/cinerate/internal/models"
)

// GetCurrentUser handles GET /api/v1/users/me.
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, auth.UserFromContext(r.Context()))
}

// UpdateCurrentUser handles PUT /api/v1/users/me. Only non-nil fields are
// applied. A username collision reports 400 "Username already taken".
func (h *Handler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	current := auth.UserFromContext(r.Context())

	var body models.UserUpdate
	if !decodeBody(w, r, &body) {
		return
	}

	user, err := h.db.UpdateUser(r.Context(), current.ID, &body)
	if err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			respondDetail(w, http.StatusBadRequest, "Username already taken")
			return
		}
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// GetUser handles GET /api/v1/users/{user_id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(w, r, "user_id")
	if !ok {
		return
	}

	user, err := h.db.GetUserByID(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}
