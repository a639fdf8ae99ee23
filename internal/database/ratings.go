// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cinerate/cinerate/internal/metrics"
	"github.com/cinerate/cinerate/internal/models"
)

// GetRatingsByMovie returns the ratings for a movie, newest first, joined
// with the rater's demographic profile. Returns ErrMovieNotFound when the
// movie does not exist.
func (db *DB) GetRatingsByMovie(ctx context.Context, movieID string, skip, limit int) ([]*models.RatingWithUser, error) {
	if exists, err := db.MovieExists(ctx, movieID); err != nil {
		return nil, err
	} else if !exists {
		return nil, ErrMovieNotFound
	}

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT r.id, r.movie_id, r.user_id, r.score, r.created_at, r.updated_at,
			u.id, u.username, u.age, u.gender, u.country, u.continent
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.movie_id = ?
		ORDER BY r.created_at DESC, r.id`, movieID)
	metrics.RecordDBQuery("rating_list", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer closeQuietly(rows)

	ratings := []*models.RatingWithUser{}
	for rows.Next() {
		var (
			rw        models.RatingWithUser
			age       sql.NullInt32
			gender    sql.NullString
			country   sql.NullString
			continent sql.NullString
		)
		err := rows.Scan(&rw.ID, &rw.MovieID, &rw.UserID, &rw.Score,
			&rw.CreatedAt, &rw.UpdatedAt,
			&rw.User.ID, &rw.User.Username, &age, &gender, &country, &continent)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		rw.User.Age = intPtr(age)
		rw.User.Gender = strPtr(gender)
		rw.User.Country = strPtr(country)
		rw.User.Continent = strPtr(continent)
		ratings = append(ratings, &rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ratings: %w", err)
	}

	return paginate(ratings, skip, limit), nil
}

// GetRatingByID fetches a rating by id. Returns ErrRatingNotFound when absent.
func (db *DB) GetRatingByID(ctx context.Context, id string) (*models.Rating, error) {
	var r models.Rating
	err := db.conn.QueryRowContext(ctx, `
		SELECT id, movie_id, user_id, score, created_at, updated_at
		FROM ratings WHERE id = ?`, id).
		Scan(&r.ID, &r.MovieID, &r.UserID, &r.Score, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRatingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query rating: %w", err)
	}
	return &r, nil
}

// UpsertRating creates a rating or, when the user already rated the movie,
// updates the existing score in place. One rating per user per movie.
// Returns ErrMovieNotFound when the movie does not exist.
func (db *DB) UpsertRating(ctx context.Context, userID string, in *models.RatingCreate) (*models.Rating, error) {
	if exists, err := db.MovieExists(ctx, in.MovieID); err != nil {
		return nil, err
	} else if !exists {
		return nil, ErrMovieNotFound
	}

	start := time.Now()
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	var r models.Rating
	err = tx.QueryRowContext(ctx, `
		SELECT id, movie_id, user_id, score, created_at, updated_at
		FROM ratings WHERE user_id = ? AND movie_id = ?`, userID, in.MovieID).
		Scan(&r.ID, &r.MovieID, &r.UserID, &r.Score, &r.CreatedAt, &r.UpdatedAt)

	switch {
	case err == nil:
		r.Score = in.Score
		r.UpdatedAt = now
		_, err = tx.ExecContext(ctx,
			`UPDATE ratings SET score = ?, updated_at = ? WHERE id = ?`,
			r.Score, r.UpdatedAt, r.ID)
		if err != nil {
			metrics.RecordDBQuery("rating_upsert", time.Since(start), err)
			return nil, fmt.Errorf("failed to update rating: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		r = models.Rating{
			ID:        uuid.New().String(),
			MovieID:   in.MovieID,
			UserID:    userID,
			Score:     in.Score,
			CreatedAt: now,
			UpdatedAt: now,
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO ratings (id, movie_id, user_id, score, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, r.MovieID, r.UserID, r.Score, r.CreatedAt, r.UpdatedAt)
		if err != nil {
			metrics.RecordDBQuery("rating_upsert", time.Since(start), err)
			return nil, fmt.Errorf("failed to insert rating: %w", err)
		}
	default:
		metrics.RecordDBQuery("rating_upsert", time.Since(start), err)
		return nil, fmt.Errorf("failed to query existing rating: %w", err)
	}

	err = tx.Commit()
	metrics.RecordDBQuery("rating_upsert", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to commit rating: %w", err)
	}
	return &r, nil
}

// DeleteRating removes a rating by id. Returns ErrRatingNotFound when absent.
func (db *DB) DeleteRating(ctx context.Context, id string) error {
	if exists, err := db.exists(ctx, `SELECT 1 FROM ratings WHERE id = ?`, id); err != nil {
		return err
	} else if !exists {
		return ErrRatingNotFound
	}

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, `DELETE FROM ratings WHERE id = ?`, id)
	metrics.RecordDBQuery("rating_delete", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}
