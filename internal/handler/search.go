package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Search handles GET /api/search?q=. Matching is a case-insensitive
// substring test over title and content, restricted to the caller's own
// notes; an empty query returns all of them.
func (h *NoteHandler) Search(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authorization token is required"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	notes, err := h.Notes.Search(ctx, userID, c.QueryParam("q"))
	if err != nil {
		log.Printf("search: query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error searching for notes"})
	}
	return c.JSON(http.StatusOK, notes)
}
