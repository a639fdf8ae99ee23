// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package models

import "time"

// Comment represents a user comment on a movie.
type Comment struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentCreate is the comment creation request body.
type CommentCreate struct {
	MovieID string `json:"movie_id" validate:"required,uuid4"`
	Text    string `json:"text" validate:"required,min=1,max=5000"`
}

// CommentUpdate is the comment update request body.
type CommentUpdate struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}

// CommentUser is the fixed-shape author projection embedded in comment
// listings. Intentionally narrower than RatingUser.
type CommentUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// CommentWithUser is a comment joined with its author projection.
type CommentWithUser struct {
	Comment
	User CommentUser `json:"user"`
}
