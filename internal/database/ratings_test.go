// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/cinerate/cinerate/internal/models"
)

func TestUpsertRating_CreateThenUpdate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	movie := mustCreateMovie(t, db, "Rated")
	user := mustCreateUser(t, db, "rater", nil, nil, nil, nil)

	first := mustRate(t, db, user.ID, movie.ID, 6)
	second := mustRate(t, db, user.ID, movie.ID, 9)

	if second.ID != first.ID {
		t.Errorf("Re-rating must update in place, got new id %s", second.ID)
	}
	if second.Score != 9 {
		t.Errorf("Expected score 9, got %d", second.Score)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Error("CreatedAt must be preserved on update")
	}

	ratings, err := db.GetRatingsByMovie(ctx, movie.ID, 0, 0)
	if err != nil {
		t.Fatalf("GetRatingsByMovie failed: %v", err)
	}
	if len(ratings) != 1 {
		t.Fatalf("Expected a single rating row, got %d", len(ratings))
	}
	if ratings[0].Score != 9 {
		t.Errorf("Expected stored score 9, got %d", ratings[0].Score)
	}
}

func TestUpsertRating_MovieNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := mustCreateUser(t, db, "rater", nil, nil, nil, nil)

	_, err := db.UpsertRating(context.Background(), user.ID, &models.RatingCreate{
		MovieID: uuid.New().String(),
		Score:   5,
	})
	if !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("Expected ErrMovieNotFound, got %v", err)
	}
}

func TestGetRatingsByMovie_UserProjection(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	movie := mustCreateMovie(t, db, "Rated")
	withDemo := mustCreateUser(t, db, "alice", intp(28), strp("female"), strp("Spain"), strp("Europe"))
	noDemo := mustCreateUser(t, db, "bob", nil, nil, nil, nil)

	mustRate(t, db, withDemo.ID, movie.ID, 7)
	mustRate(t, db, noDemo.ID, movie.ID, 4)

	ratings, err := db.GetRatingsByMovie(ctx, movie.ID, 0, 0)
	if err != nil {
		t.Fatalf("GetRatingsByMovie failed: %v", err)
	}
	if len(ratings) != 2 {
		t.Fatalf("Expected 2 ratings, got %d", len(ratings))
	}

	byUser := map[string]*models.RatingWithUser{}
	for _, r := range ratings {
		byUser[r.User.Username] = r
	}
	alice := byUser["alice"]
	if alice == nil {
		t.Fatal("Missing alice's rating")
	}
	if alice.User.Age == nil || *alice.User.Age != 28 {
		t.Errorf("Expected age 28, got %v", alice.User.Age)
	}
	if alice.User.Continent == nil || *alice.User.Continent != "Europe" {
		t.Errorf("Expected continent Europe, got %v", alice.User.Continent)
	}
	bob := byUser["bob"]
	if bob == nil {
		t.Fatal("Missing bob's rating")
	}
	if bob.User.Age != nil || bob.User.Gender != nil || bob.User.Country != nil {
		t.Errorf("Expected nil demographics for bob, got %+v", bob.User)
	}
}

func TestGetRatingsByMovie_MovieNotFound(t *testing.T) {
	db := setupTestDB(t)
	_, err := db.GetRatingsByMovie(context.Background(), uuid.New().String(), 0, 0)
	if !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("Expected ErrMovieNotFound, got %v", err)
	}
}

func TestDeleteRating_Success(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	movie := mustCreateMovie(t, db, "Rated")
	user := mustCreateUser(t, db, "rater", nil, nil, nil, nil)
	rating := mustRate(t, db, user.ID, movie.ID, 8)

	if err := db.DeleteRating(ctx, rating.ID); err != nil {
		t.Fatalf("DeleteRating failed: %v", err)
	}
	if _, err := db.GetRatingByID(ctx, rating.ID); !errors.Is(err, ErrRatingNotFound) {
		t.Errorf("Expected ErrRatingNotFound after delete, got %v", err)
	}
}

func TestDeleteRating_NotFound(t *testing.T) {
	db := setupTestDB(t)
	err := db.DeleteRating(context.Background(), uuid.New().String())
	if !errors.Is(err, ErrRatingNotFound) {
		t.Errorf("Expected ErrRatingNotFound, got %v", err)
	}
}
