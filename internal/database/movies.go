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
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cinerate/cinerate/internal/metrics"
	"github.com/cinerate/cinerate/internal/models"
)

const movieColumns = `id, title, release_year, director, cast_list, genres,
	plot, duration_minutes, poster_url, images, created_at, updated_at`

// scanMovie scans one movie row in movieColumns order.
func scanMovie(row interface{ Scan(...interface{}) error }) (*models.Movie, error) {
	var (
		m         models.Movie
		castRaw   string
		genresRaw string
		posterURL sql.NullString
		imagesRaw sql.NullString
	)
	err := row.Scan(&m.ID, &m.Title, &m.ReleaseYear, &m.Director,
		&castRaw, &genresRaw, &m.Plot, &m.Duration, &posterURL, &imagesRaw,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if m.Cast, err = unmarshalList(castRaw); err != nil {
		return nil, err
	}
	if m.Genre, err = unmarshalList(genresRaw); err != nil {
		return nil, err
	}
	if m.Images, err = unmarshalList(imagesRaw.String); err != nil {
		return nil, err
	}
	m.PosterURL = strPtr(posterURL)
	return &m, nil
}

// CreateMovie inserts a new movie and returns the stored record.
func (db *DB) CreateMovie(ctx context.Context, in *models.MovieCreate) (*models.Movie, error) {
	start := time.Now()

	castJSON, err := marshalList(in.Cast)
	if err != nil {
		return nil, err
	}
	genresJSON, err := marshalList(in.Genre)
	if err != nil {
		return nil, err
	}
	imagesJSON, err := marshalList(in.Images)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	movie := &models.Movie{
		ID:          uuid.New().String(),
		Title:       in.Title,
		ReleaseYear: in.ReleaseYear,
		Director:    in.Director,
		Cast:        emptyIfNil(in.Cast),
		Genre:       emptyIfNil(in.Genre),
		Plot:        in.Plot,
		Duration:    in.Duration,
		PosterURL:   in.PosterURL,
		Images:      emptyIfNil(in.Images),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO movies (id, title, release_year, director, cast_list, genres,
			plot, duration_minutes, poster_url, images, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		movie.ID, movie.Title, movie.ReleaseYear, movie.Director,
		castJSON, genresJSON, movie.Plot, movie.Duration,
		nullStr(movie.PosterURL), imagesJSON, movie.CreatedAt, movie.UpdatedAt)
	metrics.RecordDBQuery("movie_create", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to insert movie: %w", err)
	}

	return movie, nil
}

// GetMovieByID fetches a movie by id. Returns ErrMovieNotFound when absent.
func (db *DB) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id = ?`, id)
	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query movie: %w", err)
	}
	return movie, nil
}

// MovieExists reports whether a movie with the given id exists.
func (db *DB) MovieExists(ctx context.Context, id string) (bool, error) {
	return db.exists(ctx, `SELECT 1 FROM movies WHERE id = ?`, id)
}

// ListMovies returns movies matching the filter, ordered by title. Title and
// director match case-insensitively as substrings; genre matching and
// pagination run after scanning because genre lists are stored as JSON text.
func (db *DB) ListMovies(ctx context.Context, filter *models.MovieFilter) ([]*models.Movie, error) {
	start := time.Now()

	query := `SELECT ` + movieColumns + ` FROM movies`
	var (
		conds []string
		args  []interface{}
	)
	if filter.Title != "" {
		conds = append(conds, `title ILIKE ?`)
		args = append(args, "%"+filter.Title+"%")
	}
	if filter.Director != "" {
		conds = append(conds, `director ILIKE ?`)
		args = append(args, "%"+filter.Director+"%")
	}
	if filter.Year != 0 {
		conds = append(conds, `release_year = ?`)
		args = append(args, filter.Year)
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY title, id`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("movie_list", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer closeQuietly(rows)

	movies := []*models.Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		if filter.Genre != "" && !containsString(movie.Genre, filter.Genre) {
			continue
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}

	return paginate(movies, filter.Skip, filter.Limit), nil
}

// UpdateMovie applies a partial update to a movie. Nil fields are left
// unchanged; slice fields replace the stored list wholesale.
func (db *DB) UpdateMovie(ctx context.Context, id string, in *models.MovieUpdate) (*models.Movie, error) {
	movie, err := db.GetMovieByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		movie.Title = *in.Title
	}
	if in.ReleaseYear != nil {
		movie.ReleaseYear = *in.ReleaseYear
	}
	if in.Director != nil {
		movie.Director = *in.Director
	}
	if in.Cast != nil {
		movie.Cast = in.Cast
	}
	if in.Genre != nil {
		movie.Genre = in.Genre
	}
	if in.Plot != nil {
		movie.Plot = *in.Plot
	}
	if in.Duration != nil {
		movie.Duration = *in.Duration
	}
	if in.PosterURL != nil {
		movie.PosterURL = in.PosterURL
	}
	if in.Images != nil {
		movie.Images = in.Images
	}
	movie.UpdatedAt = time.Now().UTC()

	castJSON, err := marshalList(movie.Cast)
	if err != nil {
		return nil, err
	}
	genresJSON, err := marshalList(movie.Genre)
	if err != nil {
		return nil, err
	}
	imagesJSON, err := marshalList(movie.Images)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	_, err = db.conn.ExecContext(ctx, `
		UPDATE movies SET title = ?, release_year = ?, director = ?, cast_list = ?,
			genres = ?, plot = ?, duration_minutes = ?, poster_url = ?, images = ?,
			updated_at = ?
		WHERE id = ?`,
		movie.Title, movie.ReleaseYear, movie.Director, castJSON, genresJSON,
		movie.Plot, movie.Duration, nullStr(movie.PosterURL), imagesJSON,
		movie.UpdatedAt, id)
	metrics.RecordDBQuery("movie_update", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	return movie, nil
}

// DeleteMovie removes a movie along with its ratings and comments in a single
// transaction. Returns ErrMovieNotFound when the movie does not exist.
func (db *DB) DeleteMovie(ctx context.Context, id string) error {
	if exists, err := db.MovieExists(ctx, id); err != nil {
		return err
	} else if !exists {
		return ErrMovieNotFound
	}

	start := time.Now()
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		`DELETE FROM ratings WHERE movie_id = ?`,
		`DELETE FROM comments WHERE movie_id = ?`,
		`DELETE FROM movies WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			metrics.RecordDBQuery("movie_delete", time.Since(start), err)
			return fmt.Errorf("failed to delete movie: %w", err)
		}
	}

	err = tx.Commit()
	metrics.RecordDBQuery("movie_delete", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to commit movie delete: %w", err)
	}
	return nil
}

// containsString reports whether the list has an entry exactly equal to s.
// Genre matching is case-sensitive, unlike the title and director filters.
func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

// emptyIfNil normalizes a nil slice to an empty one for JSON responses.
func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// paginate applies skip/limit to an already-filtered slice.
func paginate[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
