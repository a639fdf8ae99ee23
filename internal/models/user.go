// Cinerate - Movie Rating and Statistics API
// Copyright 2026 Cinerate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinerate/cinerate

package models

import "time"

// User represents a registered account. Demographic fields are optional and
// feed the statistics breakdowns; Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Age       *int      `json:"age"`
	Gender    *string   `json:"gender"`
	Country   *string   `json:"country"`
	Continent *string   `json:"continent"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserCreate is the registration request body.
type UserCreate struct {
	Username  string  `json:"username" validate:"required,min=3,max=64"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Age       *int    `json:"age" validate:"omitempty,min=0,max=150"`
	Gender    *string `json:"gender"`
	Country   *string `json:"country"`
	Continent *string `json:"continent"`
}

// UserUpdate is the partial-update request body for the current user.
// Nil fields are left unchanged.
type UserUpdate struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=64"`
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Age       *int    `json:"age" validate:"omitempty,min=0,max=150"`
	Gender    *string `json:"gender"`
	Country   *string `json:"country"`
	Continent *string `json:"continent"`
}

// Token is the login response body.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
