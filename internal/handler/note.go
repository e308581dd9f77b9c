package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arsalanh/quicknotes/internal/repository"
)

// NoteHandler bundles repositories for the note endpoints. Every operation
// resolves the caller from the request context; ownership is enforced
// inside the repository queries themselves.
type NoteHandler struct {
	Notes  *repository.NoteRepo
	Shares *repository.ShareRepo
}

func NewNoteHandler(notes *repository.NoteRepo, shares *repository.ShareRepo) *NoteHandler {
	return &NoteHandler{Notes: notes, Shares: shares}
}

type noteReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// noteID parses the :id route param. A non-numeric id cannot name any
// note, so it gets the same not-found answer as an absent one.
func noteID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

// List handles GET /api/notes.
func (h *NoteHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authorization token is required"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	notes, err := h.Notes.ListByOwner(ctx, userID)
	if err != nil {
		log.Printf("notes: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error retrieving notes"})
	}
	return c.JSON(http.StatusOK, notes)
}

// Get handles GET /api/notes/:id.
func (h *NoteHandler) Get(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authorization token is required"})
	}
	id, ok := noteID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Note not found"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	note, err := h.Notes.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Note not found"})
		}
		log.Printf("notes: get failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error retrieving note"})
	}
	return c.JSON(http.StatusOK, note)
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authorization token is required"})
	}
	var req noteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Title and content are required."})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Title and content are required."})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	note, err := h.Notes.Create(ctx, userID, req.Title, req.Content)
	if err != nil {
		log.Printf("notes: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error creating note"})
	}
	return c.JSON(http.StatusCreated, note)
}

// Update handles PUT /api/notes/:id.
func (h *NoteHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authorization token is required"})
	}
	id, ok := noteID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Note not found"})
	}
	var req noteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Title and content are required."})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Title and content are required."})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	note, err := h.Notes.Update(ctx, id, userID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Note not found"})
		}
		log.Printf("notes: update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error updating note"})
	}
	return c.JSON(http.StatusOK, note)
}

// Delete handles DELETE /api/notes/:id.
func (h *NoteHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authorization token is required"})
	}
	id, ok := noteID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Note not found"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Notes.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Note not found"})
		}
		log.Printf("notes: delete failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error deleting note"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Note deleted successfully"})
}
