// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package database

import (
	"context"
	"testing"

	"github.com/cinerate/cinerate/internal/config"
	"github.com/cinerate/cinerate/internal/models"
)

// testDBSemaphore serializes DuckDB usage across tests. Concurrent CGO
// connections under CI resource pressure can hang, so only one test holds an
// open database at a time.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB creates an in-memory test database. The semaphore is held for
// the entire test lifecycle and released via t.Cleanup.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	cfg := &config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "1GB",
	}
	db, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db
}

// strp and intp build pointers for optional demographic fields.
func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

// mustCreateUser inserts a user with the given demographics and fails the
// test on error.
func mustCreateUser(t *testing.T, db *DB, username string, age *int, gender, country, continent *string) *models.User {
	t.Helper()
	user, err := db.CreateUser(context.Background(), &models.UserCreate{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "ignored-plaintext",
		Age:       age,
		Gender:    gender,
		Country:   country,
		Continent: continent,
	}, "$2a$04$fakehashfakehashfakehashfakehash")
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

// mustCreateMovie inserts a minimal movie and fails the test on error.
func mustCreateMovie(t *testing.T, db *DB, title string) *models.Movie {
	t.Helper()
	movie, err := db.CreateMovie(context.Background(), &models.MovieCreate{
		Title:       title,
		ReleaseYear: 1999,
		Director:    "Test Director",
		Cast:        []string{"Actor One"},
		Genre:       []string{"Drama"},
		Plot:        "A test plot.",
		Duration:    120,
	})
	if err != nil {
		t.Fatalf("Failed to create movie %s: %v", title, err)
	}
	return movie
}

// mustRate inserts or updates a rating and fails the test on error.
func mustRate(t *testing.T, db *DB, userID, movieID string, score int) *models.Rating {
	t.Helper()
	rating, err := db.UpsertRating(context.Background(), userID, &models.RatingCreate{
		MovieID: movieID,
		Score:   score,
	})
	if err != nil {
		t.Fatalf("Failed to rate movie: %v", err)
	}
	return rating
}

func TestPing_Success(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestMarshalList_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input []string
	}{
		{"nil slice", nil},
		{"empty slice", []string{}},
		{"values", []string{"a", "b c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := marshalList(tt.input)
			if err != nil {
				t.Fatalf("marshalList failed: %v", err)
			}
			out, err := unmarshalList(raw)
			if err != nil {
				t.Fatalf("unmarshalList failed: %v", err)
			}
			if len(out) != len(tt.input) {
				t.Errorf("Expected %d items, got %d", len(tt.input), len(out))
			}
			for i := range out {
				if out[i] != tt.input[i] {
					t.Errorf("Item %d: expected %q, got %q", i, tt.input[i], out[i])
				}
			}
		})
	}
}

func TestPaginate_Bounds(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name  string
		skip  int
		limit int
		want  []int
	}{
		{"no skip within limit", 0, 10, []int{1, 2, 3, 4, 5}},
		{"skip two", 2, 10, []int{3, 4, 5}},
		{"skip past end", 9, 10, []int{}},
		{"limit smaller than rest", 1, 2, []int{2, 3}},
		{"negative skip treated as zero", -3, 2, []int{1, 2}},
		{"zero limit means unbounded", 0, 0, []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(items, tt.skip, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Index %d: expected %d, got %d", i, tt.want[i], got[i])
				}
			}
		})
	}
}
