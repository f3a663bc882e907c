package handler

import (
	"context"
	"net/http"

	"booksnap/backend/internal/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/unicode/norm"
)

// AnalyzeRequest is the authenticated scoring payload.
type AnalyzeRequest struct {
	Book            *model.Book          `json:"book"`
	UserPreferences *model.TasteProfile  `json:"userPreferences"`
	ReadingHistory  []model.HistoryEntry `json:"readingHistory"`
}

// QuickRecommendationRequest is the anonymous kiosk scoring payload. The
// customer profile plays the role of the user preferences; there is no
// reading history.
type QuickRecommendationRequest struct {
	Book            *model.Book         `json:"book"`
	CustomerProfile *model.TasteProfile `json:"customerProfile"`
}

// HandleAnalyzeBook scores one book against the reader's taste and history.
func (h *Handlers) HandleAnalyzeBook(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
		return
	}
	h.analyze(c, "/api/analyze-book", req.Book, req.UserPreferences, req.ReadingHistory)
}

// HandleQuickRecommendation is the kiosk-mode variant of HandleAnalyzeBook.
func (h *Handlers) HandleQuickRecommendation(c *gin.Context) {
	var req QuickRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
			"code":  "INVALID_REQUEST",
		})
		return
	}
	h.analyze(c, "/api/quick-recommendation", req.Book, req.CustomerProfile, nil)
}

func (h *Handlers) analyze(c *gin.Context, route string, book *model.Book, prefs *model.TasteProfile, history []model.HistoryEntry) {
	if book == nil || prefs == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing book or user preferences data.",
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

	analysis, err := h.Advisor.AnalyzeBook(ctx, book, prefs, history)
	if err != nil {
		respondUpstreamError(c, route, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// normalizeProfile puts free-text profile fields into NFC form so Unicode
// lookalike sequences compare and render consistently downstream.
func normalizeProfile(prefs *model.TasteProfile) {
	prefs.Bio = norm.NFC.String(prefs.Bio)
	for i, v := range prefs.Vibes {
		prefs.Vibes[i] = norm.NFC.String(v)
	}
	for i, g := range prefs.FavoriteGenres {
		prefs.FavoriteGenres[i] = norm.NFC.String(g)
	}
}
