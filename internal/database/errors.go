// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package database

import "errors"

// Domain sentinel errors raised by the store. Handlers map these onto the
// fixed HTTP error bodies; anything else is an infrastructure failure.
var (
	// ErrMovieNotFound indicates the target movie id does not exist.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrUserNotFound indicates the target user id does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrRatingNotFound indicates the target rating id does not exist.
	ErrRatingNotFound = errors.New("rating not found")

	// ErrCommentNotFound indicates the target comment id does not exist.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken indicates the username is already registered.
	ErrUsernameTaken = errors.New("username already registered")
)
