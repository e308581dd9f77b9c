package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arsalanh/quicknotes/internal/repository"
)

type shareReq struct {
	SharedWithUserID int64 `json:"sharedWithUserId"`
}

// Share handles POST /api/notes/:id/share. Only the owner may share, and
// only reads are granted: the recipient gains no update or delete rights
// because every mutation keeps filtering on the owner.
func (h *NoteHandler) Share(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authorization token is required"})
	}
	id, ok := noteID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Note not found"})
	}
	var req shareReq
	if err := c.Bind(&req); err != nil || req.SharedWithUserID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "sharedWithUserId is required."})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	// A note owned by someone else answers exactly like a missing one.
	if _, err := h.Notes.GetByID(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Note not found"})
		}
		log.Printf("share: note lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error sharing note"})
	}

	share, err := h.Shares.Create(ctx, id, userID, req.SharedWithUserID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateShare):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Note is already shared with this user."})
		case errors.Is(err, repository.ErrInvalidRecipient):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Recipient user does not exist."})
		}
		log.Printf("share: insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error sharing note"})
	}
	return c.JSON(http.StatusCreated, share)
}
