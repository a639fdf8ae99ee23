// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package models

// AgeStatistics counts raters per fixed age bucket. The six ranges are
// disjoint and exhaustive over defined ages; raters with no recorded age are
// counted in no bucket, so the bucket sum can be less than the total number
// of ratings.
type AgeStatistics struct {
	Under18   int `json:"under18"`
	Age18to24 int `json:"age18to24"`
	Age25to34 int `json:"age25to34"`
	Age35to44 int `json:"age35to44"`
	Age45to54 int `json:"age45to54"`
	Age55plus int `json:"age55plus"`
}

// GenderStatistics counts raters per gender bucket. Classification is a
// case-sensitive exact match against "male", "female" and "other"; any other
// value, including none at all, lands in NotSpecified. The bucket sum always
// equals the total number of ratings.
type GenderStatistics struct {
	Male         int `json:"male"`
	Female       int `json:"female"`
	Other        int `json:"other"`
	NotSpecified int `json:"not_specified"`
}

// ContinentStatistics counts raters per continent. Only exact matches against
// the seven bucket names count; unknown or missing values count nowhere.
// There is deliberately no not_specified bucket here, unlike gender.
type ContinentStatistics struct {
	Africa       int `json:"africa"`
	Asia         int `json:"asia"`
	Europe       int `json:"europe"`
	NorthAmerica int `json:"north_america"`
	SouthAmerica int `json:"south_america"`
	Australia    int `json:"australia"`
	Antarctica   int `json:"antarctica"`
}

// MovieStatistics is the full per-movie aggregate: overall average and count
// plus four independent demographic breakdowns of the raters. The breakdowns
// are separate single-pass tallies over the same rater set, not a joint
// cross-tabulation. CountryStatistics is sparse: countries nobody rated from
// are absent rather than zero.
type MovieStatistics struct {
	MovieID             string              `json:"movie_id"`
	AverageRating       float64             `json:"average_rating"`
	TotalRatings        int                 `json:"total_ratings"`
	AgeStatistics       AgeStatistics       `json:"age_statistics"`
	GenderStatistics    GenderStatistics    `json:"gender_statistics"`
	ContinentStatistics ContinentStatistics `json:"continent_statistics"`
	CountryStatistics   map[string]int      `json:"country_statistics"`
}
