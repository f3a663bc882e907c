package handler

import (
	"errors"
	"log"
	"net/http"

	"booksnap/backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

const maxSearchResults = 10

// HandleSearchBooks proxies a title or ISBN search against the external
// catalog so the app client never talks to it directly. Zero results is "no
// book found", not a failure.
func (h *Handlers) HandleSearchBooks(c *gin.Context) {
	title := c.Query("q")
	isbn := c.Query("isbn")
	if title == "" && isbn == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing q or isbn query parameter.",
			"code":  "MISSING_DATA",
		})
		return
	}

	if isbn != "" {
		book, err := h.Catalog.LookupISBN(c.Request.Context(), isbn)
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No book found.",
				"code":  "NOT_FOUND",
			})
			return
		}
		if err != nil {
			log.Printf("[ERROR] /api/search-books ISBN lookup failed for %s: %v", isbn, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Catalog lookup failed.",
				"code":  "INTERNAL_ERROR",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": []any{book}})
		return
	}

	books, err := h.Catalog.SearchByTitle(c.Request.Context(), title, maxSearchResults)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No book found.",
			"code":  "NOT_FOUND",
		})
		return
	}
	if err != nil {
		log.Printf("[ERROR] /api/search-books title search failed for %q: %v", title, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Catalog lookup failed.",
			"code":  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": books})
}
