// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cinerate/cinerate/internal/metrics"
	"github.com/cinerate/cinerate/internal/models"
)

// GetMovieRatingSummary returns the overall average score and rating count
// for a movie. A movie with no ratings reports an average of 0.
// Returns ErrMovieNotFound when the movie does not exist.
func (db *DB) GetMovieRatingSummary(ctx context.Context, movieID string) (*models.MovieRatingSummary, error) {
	if exists, err := db.MovieExists(ctx, movieID); err != nil {
		return nil, err
	} else if !exists {
		return nil, ErrMovieNotFound
	}

	start := time.Now()
	summary := &models.MovieRatingSummary{MovieID: movieID}
	err := db.conn.QueryRowContext(ctx, `
		SELECT CAST(COALESCE(AVG(score), 0) AS DOUBLE), COUNT(*)
		FROM ratings WHERE movie_id = ?`, movieID).
		Scan(&summary.AverageScore, &summary.TotalRatings)
	metrics.RecordDBQuery("rating_summary", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	metrics.StatisticsComputed.WithLabelValues("summary").Inc()
	return summary, nil
}

// GetMovieStatistics computes the full per-movie aggregate: average score,
// rating count and the four demographic breakdowns of the raters. All of it
// is pushed down to DuckDB as conditional aggregation; the breakdowns are
// independent tallies over the same joined rater set.
//
// Bucketing rules differ per dimension and are deliberate:
//   - age: six fixed ranges, NULL ages counted nowhere
//   - gender: case-sensitive match on male/female/other, everything else
//     (including NULL) folded into not_specified
//   - continent: exact match on the seven lowercase bucket names, no
//     catch-all bucket
//   - country: sparse group-by over non-NULL values
//
// Returns ErrMovieNotFound when the movie does not exist.
func (db *DB) GetMovieStatistics(ctx context.Context, movieID string) (*models.MovieStatistics, error) {
	if exists, err := db.MovieExists(ctx, movieID); err != nil {
		return nil, err
	} else if !exists {
		return nil, ErrMovieNotFound
	}

	stats := &models.MovieStatistics{
		MovieID:           movieID,
		CountryStatistics: map[string]int{},
	}

	start := time.Now()

	// COUNT(CASE WHEN cond THEN 1 END) keeps every counter a BIGINT;
	// SUM over integers would widen to HUGEINT, which database/sql
	// cannot scan into an int.
	err := db.conn.QueryRowContext(ctx, `
		SELECT
			CAST(COALESCE(AVG(r.score), 0) AS DOUBLE),
			COUNT(*),
			COUNT(CASE WHEN u.age < 18 THEN 1 END),
			COUNT(CASE WHEN u.age BETWEEN 18 AND 24 THEN 1 END),
			COUNT(CASE WHEN u.age BETWEEN 25 AND 34 THEN 1 END),
			COUNT(CASE WHEN u.age BETWEEN 35 AND 44 THEN 1 END),
			COUNT(CASE WHEN u.age BETWEEN 45 AND 54 THEN 1 END),
			COUNT(CASE WHEN u.age >= 55 THEN 1 END),
			COUNT(CASE WHEN u.gender = 'male' THEN 1 END),
			COUNT(CASE WHEN u.gender = 'female' THEN 1 END),
			COUNT(CASE WHEN u.gender = 'other' THEN 1 END),
			COUNT(CASE WHEN u.gender IS NULL
				OR u.gender NOT IN ('male', 'female', 'other') THEN 1 END),
			COUNT(CASE WHEN u.continent = 'africa' THEN 1 END),
			COUNT(CASE WHEN u.continent = 'asia' THEN 1 END),
			COUNT(CASE WHEN u.continent = 'europe' THEN 1 END),
			COUNT(CASE WHEN u.continent = 'north_america' THEN 1 END),
			COUNT(CASE WHEN u.continent = 'south_america' THEN 1 END),
			COUNT(CASE WHEN u.continent = 'australia' THEN 1 END),
			COUNT(CASE WHEN u.continent = 'antarctica' THEN 1 END)
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.movie_id = ?`, movieID).
		Scan(&stats.AverageRating, &stats.TotalRatings,
			&stats.AgeStatistics.Under18, &stats.AgeStatistics.Age18to24,
			&stats.AgeStatistics.Age25to34, &stats.AgeStatistics.Age35to44,
			&stats.AgeStatistics.Age45to54, &stats.AgeStatistics.Age55plus,
			&stats.GenderStatistics.Male, &stats.GenderStatistics.Female,
			&stats.GenderStatistics.Other, &stats.GenderStatistics.NotSpecified,
			&stats.ContinentStatistics.Africa, &stats.ContinentStatistics.Asia,
			&stats.ContinentStatistics.Europe, &stats.ContinentStatistics.NorthAmerica,
			&stats.ContinentStatistics.SouthAmerica, &stats.ContinentStatistics.Australia,
			&stats.ContinentStatistics.Antarctica)
	if err != nil {
		metrics.RecordDBQuery("movie_statistics", time.Since(start), err)
		return nil, fmt.Errorf("failed to aggregate statistics: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT u.country, COUNT(*)
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.movie_id = ? AND u.country IS NOT NULL
		GROUP BY u.country`, movieID)
	if err != nil {
		metrics.RecordDBQuery("movie_statistics", time.Since(start), err)
		return nil, fmt.Errorf("failed to aggregate country statistics: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var (
			country string
			count   int
		)
		if err := rows.Scan(&country, &count); err != nil {
			return nil, fmt.Errorf("failed to scan country statistics: %w", err)
		}
		stats.CountryStatistics[country] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate country statistics: %w", err)
	}

	metrics.RecordDBQuery("movie_statistics", time.Since(start), nil)
	metrics.StatisticsComputed.WithLabelValues("full").Inc()
	return stats, nil
}
