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

	"github.com/cinerate/cinerate/internal/models"
)

const userColumns = `id, username, email, password, first_name, last_name,
	age, gender, country, continent, is_admin, created_at, updated_at`

// scanUser scans one user row in userColumns order.
func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var (
		u         models.User
		firstName sql.NullString
		lastName  sql.NullString
		age       sql.NullInt32
		gender    sql.NullString
		country   sql.NullString
		continent sql.NullString
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password,
		&firstName, &lastName, &age, &gender, &country, &continent,
		&u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.FirstName = strPtr(firstName)
	u.LastName = strPtr(lastName)
	u.Age = intPtr(age)
	u.Gender = strPtr(gender)
	u.Country = strPtr(country)
	u.Continent = strPtr(continent)
	return &u, nil
}

// CreateUser inserts a new user. Password must already be hashed.
// Returns ErrEmailTaken or ErrUsernameTaken when the unique fields collide.
func (db *DB) CreateUser(ctx context.Context, in *models.UserCreate, passwordHash string) (*models.User, error) {
	if taken, err := db.exists(ctx, `SELECT 1 FROM users WHERE email = ?`, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}
	if taken, err := db.exists(ctx, `SELECT 1 FROM users WHERE username = ?`, in.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.New().String(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  passwordHash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Age:       in.Age,
		Gender:    in.Gender,
		Country:   in.Country,
		Continent: in.Continent,
		IsAdmin:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password, first_name, last_name,
			age, gender, country, continent, is_admin, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.Email, user.Password,
		nullStr(user.FirstName), nullStr(user.LastName), nullInt(user.Age),
		nullStr(user.Gender), nullStr(user.Country), nullStr(user.Continent),
		user.IsAdmin, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// GetUserByID fetches a user by id. Returns ErrUserNotFound when absent.
func (db *DB) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// GetUserByUsername fetches a user by username. Returns ErrUserNotFound when absent.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// GetUserByEmail fetches a user by email. Returns ErrUserNotFound when absent.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// UpdateUser applies a partial update to a user. Nil fields are left
// unchanged. Returns ErrUsernameTaken/ErrEmailTaken if the new unique value
// belongs to another user, ErrUserNotFound if the id is unknown.
func (db *DB) UpdateUser(ctx context.Context, id string, in *models.UserUpdate) (*models.User, error) {
	user, err := db.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil && *in.Username != user.Username {
		if taken, err := db.exists(ctx, `SELECT 1 FROM users WHERE username = ? AND id <> ?`, *in.Username, id); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrUsernameTaken
		}
		user.Username = *in.Username
	}
	if in.Email != nil && *in.Email != user.Email {
		if taken, err := db.exists(ctx, `SELECT 1 FROM users WHERE email = ? AND id <> ?`, *in.Email, id); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrEmailTaken
		}
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = in.FirstName
	}
	if in.LastName != nil {
		user.LastName = in.LastName
	}
	if in.Age != nil {
		user.Age = in.Age
	}
	if in.Gender != nil {
		user.Gender = in.Gender
	}
	if in.Country != nil {
		user.Country = in.Country
	}
	if in.Continent != nil {
		user.Continent = in.Continent
	}
	user.UpdatedAt = time.Now().UTC()

	_, err = db.conn.ExecContext(ctx, `
		UPDATE users SET username = ?, email = ?, first_name = ?, last_name = ?,
			age = ?, gender = ?, country = ?, continent = ?, updated_at = ?
		WHERE id = ?`,
		user.Username, user.Email, nullStr(user.FirstName), nullStr(user.LastName),
		nullInt(user.Age), nullStr(user.Gender), nullStr(user.Country),
		nullStr(user.Continent), user.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// exists runs a single-row existence probe.
func (db *DB) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var one int
	err := db.conn.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to probe existence: %w", err)
	}
	return true, nil
}
