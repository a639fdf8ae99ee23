// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package api

import (
	"errors"
	"net/http"

	"github.com/cinerate/cinerate/internal/database"
	"github.com/cinerate/cinerate/internal/logging"
	"github.com/cinerate/cinerate/internal/models"
)

// Register handles POST /api/v1/auth/register. New accounts are never
// admins. Duplicate email or username reports 400 with the fixed messages.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body models.UserCreate
	if !decodeBody(w, r, &body) {
		return
	}

	hash, err := h.hasher.Hash(body.Password)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to hash password")
		respondDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.db.CreateUser(r.Context(), &body, hash)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	logging.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User registered")
	respondJSON(w, http.StatusOK, user)
}

// Login handles POST /api/v1/auth/login. The body is form-encoded with
// username and password fields; the username field accepts either the email
// address or the username, tried in that order. Failures report a single
// generic 401 so the response does not reveal which credential was wrong.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	identifier := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if identifier == "" || password == "" {
		loginFailed(w)
		return
	}

	user, err := h.db.GetUserByEmail(r.Context(), identifier)
	if errors.Is(err, database.ErrUserNotFound) {
		user, err = h.db.GetUserByUsername(r.Context(), identifier)
	}
	if err != nil {
		if !errors.Is(err, database.ErrUserNotFound) {
			logging.Error().Err(err).Msg("Failed to look up login user")
			respondDetail(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		loginFailed(w)
		return
	}

	if !h.hasher.Verify(user.Password, password) {
		loginFailed(w)
		return
	}

	token, err := h.jwt.GenerateToken(user.ID)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to generate token")
		respondDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logging.Info().Str("user_id", user.ID).Msg("User logged in")
	respondJSON(w, http.StatusOK, models.Token{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// loginFailed writes the fixed credential failure response.
func loginFailed(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	respondDetail(w, http.StatusUnauthorized, "Incorrect email/username or password")
}
