// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/cinerate/cinerate/internal/models"
)

// fakeUserLoader serves a fixed set of users by id.
type fakeUserLoader struct {
	users map[string]*models.User
}

func (f *fakeUserLoader) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, context.Canceled // any error means unresolvable
}

func newTestMiddleware(t *testing.T) (*Middleware, *JWTManager) {
	t.Helper()
	m, err := NewJWTManager(testSecurityConfig())
	if err != nil {
		t.Fatalf("NewJWTManager failed: %v", err)
	}
	loader := &fakeUserLoader{users: map[string]*models.User{
		"user-1": {ID: "user-1", Username: "alice"},
	}}
	return NewMiddleware(m, loader), m
}

func TestAuthenticate_Success(t *testing.T) {
	mw, jwtManager := newTestMiddleware(t)
	token, err := jwtManager.GenerateToken("user-1")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	var seen *models.User
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if seen == nil || seen.Username != "alice" {
		t.Errorf("Expected alice in context, got %+v", seen)
	}
}

func TestAuthenticate_Failures(t *testing.T) {
	mw, jwtManager := newTestMiddleware(t)
	unknownUserToken, err := jwtManager.GenerateToken("user-unknown")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantDetail string
	}{
		{"missing header", "", "Not authenticated"},
		{"wrong scheme", "Basic abc123", "Could not validate credentials"},
		{"empty bearer", "Bearer ", "Could not validate credentials"},
		{"garbage token", "Bearer not.a.token", "Could not validate credentials"},
		{"unresolvable subject", "Bearer " + unknownUserToken, "Could not validate credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("Handler must not be reached")
			}))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401, got %d", rec.Code)
			}
			if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
				t.Errorf("Expected WWW-Authenticate: Bearer, got %q", got)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to decode body: %v", err)
			}
			if body["detail"] != tt.wantDetail {
				t.Errorf("Expected detail %q, got %q", tt.wantDetail, body["detail"])
			}
		})
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	if u := UserFromContext(context.Background()); u != nil {
		t.Errorf("Expected nil user, got %+v", u)
	}
}
