package handler

import (
	"errors"
	"log"
	"net/http"

	"booksnap/backend/internal/middleware"
	"booksnap/backend/internal/model"
	"booksnap/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// HandleGetLibrary returns the authenticated user's library.
func (h *Handlers) HandleGetLibrary(c *gin.Context) {
	entries, err := h.Store.Library(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		log.Printf("[ERROR] /api/library list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load library.",
			"code":  "INTERNAL_ERROR",
		})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// HandleAddLibraryEntry adds a book (with its frozen recommendation, if any)
// to the user's library.
func (h *Handlers) HandleAddLibraryEntry(c *gin.Context) {
	var entry model.LibraryEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
		return
	}
	if entry.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing book title.",
			"code":  "MISSING_DATA",
		})
		return
	}

	id, err := h.Store.AddLibraryEntry(c.Request.Context(), middleware.UserID(c), &entry)
	if err != nil {
		log.Printf("[ERROR] /api/library add failed for %q: %v", entry.Title, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add book to library.",
			"code":  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "entryId": id})
}

// HandleUpdateLibraryEntry applies a user edit to reading status, rating, or
// review. The frozen recommendation is not editable.
func (h *Handlers) HandleUpdateLibraryEntry(c *gin.Context) {
	var update store.LibraryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
		return
	}
	if update.ReadingStatus != nil && !validStatus(*update.ReadingStatus) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown reading status.",
			"code":  "MISSING_DATA",
		})
		return
	}
	if update.UserRating != nil && (*update.UserRating < 1 || *update.UserRating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Rating outside 1-5.",
			"code":  "MISSING_DATA",
		})
		return
	}

	err := h.Store.UpdateLibraryEntry(c.Request.Context(), middleware.UserID(c), c.Param("id"), update)
	if errors.Is(err, store.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Library entry not found.",
			"code":  "NOT_FOUND",
		})
		return
	}
	if err != nil {
		log.Printf("[ERROR] /api/library update failed for %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update library entry.",
			"code":  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleDeleteLibraryEntry removes a book from the user's library.
func (h *Handlers) HandleDeleteLibraryEntry(c *gin.Context) {
	err := h.Store.DeleteLibraryEntry(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if errors.Is(err, store.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Library entry not found.",
			"code":  "NOT_FOUND",
		})
		return
	}
	if err != nil {
		log.Printf("[ERROR] /api/library delete failed for %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete library entry.",
			"code":  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func validStatus(s string) bool {
	return s == model.StatusToRead || s == model.StatusReading || s == model.StatusRead
}
