// Package repository implements data access over PostgreSQL. Sentinel
// errors let handlers distinguish failure scenarios without inspecting
// driver errors themselves.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a row does not exist or is owned by another
// user. The two cases are deliberately indistinguishable so that a caller
// cannot probe for the existence of someone else's data.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when an account with the given email already
// exists, whether caught by the pre-check or by the unique constraint.
var ErrEmailExists = errors.New("email already exists")

// ErrDuplicateShare is returned when a note has already been shared with
// the same recipient.
var ErrDuplicateShare = errors.New("note already shared with this user")

// ErrInvalidRecipient is returned when the share recipient does not exist.
var ErrInvalidRecipient = errors.New("recipient does not exist")

// PostgreSQL error codes. Uniqueness and referential integrity are enforced
// by the database as the final arbiter; the codes below convert those
// violations into the sentinels above.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
