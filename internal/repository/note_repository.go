package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/arsalanh/quicknotes/internal/model"
)

type NoteRepo struct{ DB *sql.DB }

func NewNoteRepo(db *sql.DB) *NoteRepo { return &NoteRepo{DB: db} }

const noteColumns = "id, user_id, title, content, created_at, updated_at"

// Create inserts a note owned by userID and returns the stored row.
func (r *NoteRepo) Create(ctx context.Context, userID int64, title, content string) (model.Note, error) {
	var n model.Note
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO notes (user_id, title, content) VALUES ($1, $2, $3)
		 RETURNING `+noteColumns,
		userID, title, content,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return model.Note{}, err
	}
	return n, nil
}

// ListByOwner returns all notes belonging to userID.
func (r *NoteRepo) ListByOwner(ctx context.Context, userID int64) ([]model.Note, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE user_id = $1 ORDER BY id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotes(rows)
}

// GetByID fetches a single note. The owner filter is part of the query
// itself: a note owned by someone else scans as no rows, exactly like a
// note that does not exist.
func (r *NoteRepo) GetByID(ctx context.Context, id, userID int64) (model.Note, error) {
	var n model.Note
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, ErrNotFound
		}
		return model.Note{}, err
	}
	return n, nil
}

// Update rewrites title and content of the caller's note and returns the
// updated row. Not-owned and nonexistent both yield ErrNotFound.
func (r *NoteRepo) Update(ctx context.Context, id, userID int64, title, content string) (model.Note, error) {
	var n model.Note
	err := r.DB.QueryRowContext(ctx,
		`UPDATE notes SET title = $1, content = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3 AND user_id = $4
		 RETURNING `+noteColumns,
		title, content, id, userID,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, ErrNotFound
		}
		return model.Note{}, err
	}
	return n, nil
}

// Delete removes the caller's note; shared_notes rows cascade.
func (r *NoteRepo) Delete(ctx context.Context, id, userID int64) error {
	var deleted int64
	err := r.DB.QueryRowContext(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2 RETURNING id`,
		id, userID,
	).Scan(&deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Search returns the caller's notes whose title or content contains q,
// case-insensitively. An empty q matches everything the caller owns.
// Shared-to-me notes are a separate relation and never appear here.
func (r *NoteRepo) Search(ctx context.Context, userID int64, q string) ([]model.Note, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes
		 WHERE user_id = $1 AND (title ILIKE $2 OR content ILIKE $2)
		 ORDER BY id`,
		userID, "%"+q+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotes(rows)
}

func scanNotes(rows *sql.Rows) ([]model.Note, error) {
	out := make([]model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
