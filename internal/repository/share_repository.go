package repository

import (
	"context"
	"database/sql"

	"github.com/arsalanh/quicknotes/internal/model"
)

type ShareRepo struct{ DB *sql.DB }

func NewShareRepo(db *sql.DB) *ShareRepo { return &ShareRepo{DB: db} }

// Create records a read-only grant of noteID from ownerID to recipientID.
// The unique index on (note_id, shared_with_user_id) bounds the relation to
// one row per pair; a second share of the same note to the same recipient
// surfaces as ErrDuplicateShare. A recipient id that matches no user trips
// the foreign key and surfaces as ErrInvalidRecipient.
func (r *ShareRepo) Create(ctx context.Context, noteID, ownerID, recipientID int64) (model.SharedNote, error) {
	var s model.SharedNote
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO shared_notes (note_id, user_id, shared_with_user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, note_id, user_id, shared_with_user_id, created_at`,
		noteID, ownerID, recipientID,
	).Scan(&s.ID, &s.NoteID, &s.UserID, &s.SharedWithUserID, &s.CreatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return model.SharedNote{}, ErrDuplicateShare
		}
		if isPgError(err, pgForeignKeyViolation) {
			return model.SharedNote{}, ErrInvalidRecipient
		}
		return model.SharedNote{}, err
	}
	return s, nil
}
