// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

// Package api implements the HTTP surface of Cinerate: auth, users, movies,
// comments, ratings, statistics and health endpoints, all under /api/v1.
// Response bodies use snake_case field names and errors are always
// {"detail": "<message>"} with fixed messages per failure.
package api

import (
	"time"

	"github.com/cinerate/cinerate/internal/auth"
	"github.com/cinerate/cinerate/internal/config"
	"github.com/cinerate/cinerate/internal/database"
)

// Handler bundles the dependencies shared by all endpoint handlers.
type Handler struct {
	db        *database.DB
	cfg       *config.Config
	jwt       *auth.JWTManager
	hasher    *auth.PasswordHasher
	startTime time.Time
}

// New creates the handler set.
func New(db *database.DB, cfg *config.Config, jwtManager *auth.JWTManager, hasher *auth.PasswordHasher) *Handler {
	return &Handler{
		db:        db,
		cfg:       cfg,
		jwt:       jwtManager,
		hasher:    hasher,
		startTime: time.Now(),
	}
}
