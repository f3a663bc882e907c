package handler

import (
	"context"
	"net/http"

	"booksnap/backend/internal/model"

	"github.com/gin-gonic/gin"
)

// DiscoverRequest is the authenticated discovery payload.
type DiscoverRequest struct {
	UserPreferences *model.TasteProfile  `json:"userPreferences"`
	ReadingHistory  []model.HistoryEntry `json:"readingHistory"`
}

// QuickDiscoverRequest is the anonymous kiosk discovery payload.
type QuickDiscoverRequest struct {
	CustomerProfile *model.TasteProfile `json:"customerProfile"`
}

// HandleDiscoverBooks suggests three unseen titles from taste and history.
func (h *Handlers) HandleDiscoverBooks(c *gin.Context) {
	var req DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
		return
	}
	h.discover(c, "/api/discover-books", req.UserPreferences, req.ReadingHistory)
}

// HandleQuickDiscover is the kiosk-mode variant of HandleDiscoverBooks.
func (h *Handlers) HandleQuickDiscover(c *gin.Context) {
	var req QuickDiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
		return
	}
	h.discover(c, "/api/quick-discover", req.CustomerProfile, nil)
}

func (h *Handlers) discover(c *gin.Context, route string, prefs *model.TasteProfile, history []model.HistoryEntry) {
	if prefs == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing user preferences data.",
			"code":  "MISSING_DATA",
		})
		return
	}
	if h.Advisor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "AI service is not available",
			"code":  "SERVICE_UNAVAILABLE",
		})
		return
	}
	normalizeProfile(prefs)

	ctx, cancel := context.WithTimeout(c.Request.Context(), AnalysisTimeout)
	defer cancel()

	suggestions, err := h.Advisor.Discover(ctx, prefs, history)
	if err != nil {
		respondUpstreamError(c, route, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
