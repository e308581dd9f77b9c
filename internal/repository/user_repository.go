package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/arsalanh/quicknotes/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user with an already-hashed password and returns the
// stored row. A concurrent signup with the same email may slip past the
// handler's pre-check; the unique constraint catches it here and surfaces
// as ErrEmailExists rather than a generic failure.
func (r *UserRepo) Create(ctx context.Context, username, email, passwordHash string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password) VALUES ($1, $2, $3)
		 RETURNING id, username, email, password, created_at, updated_at`,
		strings.TrimSpace(username), strings.TrimSpace(email), passwordHash,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	return u, nil
}

// GetByEmail fetches a user by email for credential verification.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, username, email, password, created_at, updated_at
		 FROM users WHERE email = $1`,
		strings.TrimSpace(email),
	).Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// EmailExists reports whether an account with the given email exists. This
// is the signup pre-check; the unique constraint remains the backstop.
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		strings.TrimSpace(email),
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
