// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package models

import "time"

// Rating represents one user's score for one movie. At most one rating exists
// per (user, movie) pair; re-submitting updates the row in place.
type Rating struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	UserID    string    `json:"user_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingCreate is the create-or-update request body.
type RatingCreate struct {
	MovieID string `json:"movie_id" validate:"required,uuid4"`
	Score   int    `json:"score" validate:"required,min=1,max=10"`
}

// RatingUser is the fixed-shape rater projection embedded in rating listings.
type RatingUser struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Age       *int    `json:"age"`
	Gender    *string `json:"gender"`
	Country   *string `json:"country"`
	Continent *string `json:"continent"`
}

// RatingWithUser is a rating joined with its author's demographic projection.
type RatingWithUser struct {
	Rating
	User RatingUser `json:"user"`
}

// MovieRatingSummary is the lightweight per-movie aggregate.
type MovieRatingSummary struct {
	MovieID      string  `json:"movie_id"`
	AverageScore float64 `json:"average_score"`
	TotalRatings int     `json:"total_ratings"`
}
