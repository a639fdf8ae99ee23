// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/cinerate/cinerate/internal/logging"
	"github.com/cinerate/cinerate/internal/models"
)

type contextKey string

// userContextKey is the context key under which the authenticated user is stored.
const userContextKey contextKey = "current_user"

// UserLoader resolves a user id from a validated token to a full user record.
// The database package satisfies this interface.
type UserLoader interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Middleware authenticates requests via Bearer tokens and attaches the
// resolved user to the request context.
type Middleware struct {
	jwtManager *JWTManager
	users      UserLoader
}

// NewMiddleware creates the authentication middleware.
func NewMiddleware(jwtManager *JWTManager, users UserLoader) *Middleware {
	return &Middleware{
		jwtManager: jwtManager,
		users:      users,
	}
}

// Authenticate requires a valid Bearer token and resolves the current user.
// Missing credentials yield 401 "Not authenticated"; anything else invalid
// yields 401 "Could not validate credentials", both with a
// WWW-Authenticate: Bearer header.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, "Not authenticated")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			unauthorized(w, "Could not validate credentials")
			return
		}

		claims, err := m.jwtManager.ValidateToken(tokenString)
		if err != nil {
			logging.Debug().Err(err).Msg("Token validation failed")
			unauthorized(w, "Could not validate credentials")
			return
		}

		user, err := m.users.GetUserByID(r.Context(), claims.Subject)
		if err != nil {
			logging.Debug().Err(err).Str("user_id", claims.Subject).Msg("Token subject could not be resolved")
			unauthorized(w, "Could not validate credentials")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

// unauthorized writes a 401 response with the bearer challenge header.
func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"detail": detail}); err != nil {
		logging.Error().Err(err).Msg("Failed to write unauthorized response")
	}
}

// ContextWithUser returns a context carrying the authenticated user.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext extracts the authenticated user from the context.
// Returns nil if the request was not authenticated.
func UserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userContextKey).(*models.User); ok {
		return user
	}
	return nil
}
