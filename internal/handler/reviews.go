package handler

import (
	"log"
	"net/http"

	"booksnap/backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ReviewRequest is the review creation payload.
type ReviewRequest struct {
	BookstoreID string `json:"bookstoreId"`
	Rating      int    `json:"rating"`
	Text        string `json:"text"`
}

// HandleCreateReview appends a review to a bookstore. Requires an
// authenticated identity.
func (h *Handlers) HandleCreateReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
		return
	}
	if req.BookstoreID == "" || req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing bookstore ID or rating outside 1-5.",
			"code":  "MISSING_DATA",
		})
		return
	}

	reviewID, err := h.Store.AddReview(c.Request.Context(), req.BookstoreID, middleware.UserID(c), req.Rating, req.Text)
	if err != nil {
		log.Printf("[ERROR] /api/reviews create failed for bookstore %s: %v", req.BookstoreID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save review.",
			"code":  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "reviewId": reviewID})
}

// HandleListReviews returns a bookstore's reviews, newest first. Public.
func (h *Handlers) HandleListReviews(c *gin.Context) {
	bookstoreID := c.Param("bookstoreId")

	reviews, err := h.Store.ReviewsForBookstore(c.Request.Context(), bookstoreID)
	if err != nil {
		log.Printf("[ERROR] /api/reviews list failed for bookstore %s: %v", bookstoreID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load reviews.",
			"code":  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
