package model

import "time"

// SharedNote grants a recipient read access to a note. UserID is the
// sharer (the note's owner); the grant conveys no write rights.
type SharedNote struct {
	ID               int64     `json:"id"`
	NoteID           int64     `json:"note_id"`
	UserID           int64     `json:"user_id"`
	SharedWithUserID int64     `json:"shared_with_user_id"`
	CreatedAt        time.Time `json:"created_at"`
}
