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

// GetCommentsByMovie returns the comments for a movie, newest first, joined
// with the author's id and username. Returns ErrMovieNotFound when the movie
// does not exist.
func (db *DB) GetCommentsByMovie(ctx context.Context, movieID string, skip, limit int) ([]*models.CommentWithUser, error) {
	if exists, err := db.MovieExists(ctx, movieID); err != nil {
		return nil, err
	} else if !exists {
		return nil, ErrMovieNotFound
	}

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
		SELECT c.id, c.movie_id, c.user_id, c.text, c.created_at, c.updated_at,
			u.id, u.username
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.movie_id = ?
		ORDER BY c.created_at DESC, c.id`, movieID)
	metrics.RecordDBQuery("comment_list", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer closeQuietly(rows)

	comments := []*models.CommentWithUser{}
	for rows.Next() {
		var cw models.CommentWithUser
		err := rows.Scan(&cw.ID, &cw.MovieID, &cw.UserID, &cw.Text,
			&cw.CreatedAt, &cw.UpdatedAt, &cw.User.ID, &cw.User.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &cw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return paginate(comments, skip, limit), nil
}

// GetCommentByID fetches a comment by id. Returns ErrCommentNotFound when absent.
func (db *DB) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	var c models.Comment
	err := db.conn.QueryRowContext(ctx, `
		SELECT id, movie_id, user_id, text, created_at, updated_at
		FROM comments WHERE id = ?`, id).
		Scan(&c.ID, &c.MovieID, &c.UserID, &c.Text, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query comment: %w", err)
	}
	return &c, nil
}

// CreateComment inserts a new comment for a movie by the given user.
// Returns ErrMovieNotFound when the movie does not exist.
func (db *DB) CreateComment(ctx context.Context, userID string, in *models.CommentCreate) (*models.Comment, error) {
	if exists, err := db.MovieExists(ctx, in.MovieID); err != nil {
		return nil, err
	} else if !exists {
		return nil, ErrMovieNotFound
	}

	now := time.Now().UTC()
	comment := &models.Comment{
		ID:        uuid.New().String(),
		MovieID:   in.MovieID,
		UserID:    userID,
		Text:      in.Text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO comments (id, movie_id, user_id, text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		comment.ID, comment.MovieID, comment.UserID, comment.Text,
		comment.CreatedAt, comment.UpdatedAt)
	metrics.RecordDBQuery("comment_create", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

// UpdateComment replaces the text of an existing comment.
// Returns ErrCommentNotFound when the comment does not exist.
func (db *DB) UpdateComment(ctx context.Context, id string, in *models.CommentUpdate) (*models.Comment, error) {
	comment, err := db.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.Text = in.Text
	comment.UpdatedAt = time.Now().UTC()

	start := time.Now()
	_, err = db.conn.ExecContext(ctx,
		`UPDATE comments SET text = ?, updated_at = ? WHERE id = ?`,
		comment.Text, comment.UpdatedAt, id)
	metrics.RecordDBQuery("comment_update", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// DeleteComment removes a comment by id. Returns ErrCommentNotFound when absent.
func (db *DB) DeleteComment(ctx context.Context, id string) error {
	if exists, err := db.exists(ctx, `SELECT 1 FROM comments WHERE id = ?`, id); err != nil {
		return err
	} else if !exists {
		return ErrCommentNotFound
	}

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	metrics.RecordDBQuery("comment_delete", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
