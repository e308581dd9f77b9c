package model

import "time"

// Note represents a row in the `notes` table. Every note has exactly one
// owner (UserID) and ownership never changes after creation.
type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
