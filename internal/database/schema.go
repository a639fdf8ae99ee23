// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package database

import (
	"context"
	"fmt"
)

// createTables creates the schema if it does not exist. Ids are UUID strings
// generated by the application; cast_list, genres and images hold JSON
// arrays. DuckDB does not enforce foreign keys with cascade semantics, so
// cascade deletes are performed transactionally by the store (see
// DeleteMovie).
func (db *DB) createTables(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR PRIMARY KEY,
			username VARCHAR NOT NULL UNIQUE,
			email VARCHAR NOT NULL UNIQUE,
			password VARCHAR NOT NULL,
			first_name VARCHAR,
			last_name VARCHAR,
			age INTEGER,
			gender VARCHAR,
			country VARCHAR,
			continent VARCHAR,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS movies (
			id VARCHAR PRIMARY KEY,
			title VARCHAR NOT NULL,
			release_year INTEGER NOT NULL,
			director VARCHAR NOT NULL,
			cast_list VARCHAR NOT NULL,
			genres VARCHAR NOT NULL,
			plot VARCHAR NOT NULL,
			duration_minutes INTEGER NOT NULL,
			poster_url VARCHAR,
			images VARCHAR,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ratings (
			id VARCHAR PRIMARY KEY,
			movie_id VARCHAR NOT NULL,
			user_id VARCHAR NOT NULL,
			score INTEGER NOT NULL CHECK (score BETWEEN 1 AND 10),
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			UNIQUE (user_id, movie_id)
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id VARCHAR PRIMARY KEY,
			movie_id VARCHAR NOT NULL,
			user_id VARCHAR NOT NULL,
			text VARCHAR NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ratings_movie ON ratings (movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ratings_user ON ratings (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_movie ON comments (movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_movies_title ON movies (title)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}
