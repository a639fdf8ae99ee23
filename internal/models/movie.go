// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package models

import "time"

// Movie represents a catalog entry. Cast is ordered; Genres is set-like.
// Duration is in minutes.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ReleaseYear int       `json:"release_year"`
	Director    string    `json:"director"`
	Cast        []string  `json:"cast"`
	Genre       []string  `json:"genre"`
	Plot        string    `json:"plot"`
	Duration    int       `json:"duration"`
	PosterURL   *string   `json:"poster_url"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovieCreate is the movie creation request body (admin only).
type MovieCreate struct {
	Title       string   `json:"title" validate:"required"`
	ReleaseYear int      `json:"release_year" validate:"required,min=1870,max=2100"`
	Director    string   `json:"director" validate:"required"`
	Cast        []string `json:"cast" validate:"required,min=1"`
	Genre       []string `json:"genre" validate:"required,min=1"`
	Plot        string   `json:"plot" validate:"required"`
	Duration    int      `json:"duration" validate:"required,min=1"`
	PosterURL   *string  `json:"poster_url" validate:"omitempty,url"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

// MovieUpdate is the partial-update request body. Nil fields are left
// unchanged; slices replace the stored value wholesale when present.
type MovieUpdate struct {
	Title       *string  `json:"title"`
	ReleaseYear *int     `json:"release_year" validate:"omitempty,min=1870,max=2100"`
	Director    *string  `json:"director"`
	Cast        []string `json:"cast"`
	Genre       []string `json:"genre"`
	Plot        *string  `json:"plot"`
	Duration    *int     `json:"duration" validate:"omitempty,min=1"`
	PosterURL   *string  `json:"poster_url" validate:"omitempty,url"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

// MovieFilter carries the optional list filters for GET /movies.
type MovieFilter struct {
	Title    string
	Genre    string
	Director string
	Year     int
	Skip     int
	Limit    int
}
