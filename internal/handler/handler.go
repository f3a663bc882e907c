// Package handler exposes the BookSnap advisor service over HTTP.
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"booksnap/backend/internal/advisor"
	"booksnap/backend/internal/advisor/response"
	"booksnap/backend/internal/model"
	"booksnap/backend/internal/store"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AnalysisTimeout bounds one scoring or discovery request, including the
// enrichment call.
const AnalysisTimeout = 60 * time.Second

// Advisor abstracts the scoring engine so handler tests can substitute a
// mock and assert on upstream call counts.
type Advisor interface {
	AnalyzeBook(ctx context.Context, book *model.Book, prefs *model.TasteProfile, history []model.HistoryEntry) (*model.Analysis, error)
	Discover(ctx context.Context, prefs *model.TasteProfile, history []model.HistoryEntry) ([]model.Suggestion, error)
}

// Catalog abstracts title search for the catalog proxy route.
type Catalog interface {
	SearchByTitle(ctx context.Context, title string, max int) ([]model.Book, error)
	LookupISBN(ctx context.Context, isbn string) (*model.Book, error)
}

// Handlers holds the service dependencies shared by all routes.
type Handlers struct {
	Advisor Advisor
	Catalog Catalog
	Store   *store.DB
}

// New creates the handler set.
func New(adv Advisor, cat Catalog, db *store.DB) *Handlers {
	return &Handlers{Advisor: adv, Catalog: cat, Store: db}
}

// respondUpstreamError maps an advisor failure onto the wire. Internal
// detail stays in the server log; the caller gets a generic message.
func respondUpstreamError(c *gin.Context, route string, err error) {
	log.Printf("[ERROR] %s failed: %v", route, err)

	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": "Request timed out. Please try again.",
			"code":  "TIMEOUT",
		})
		return
	}

	if isRateLimitError(err) {
		log.Printf("[QUOTA] Gemini API rate limit exceeded on %s", route)
		c.Header("Retry-After", "60")
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":      "The AI service is over quota. Please try again shortly.",
			"code":       "GEMINI_RATE_LIMITED",
			"retryAfter": 60,
		})
		return
	}

	code := "UPSTREAM_ERROR"
	if errors.Is(err, advisor.ErrUpstreamFormat) || errors.Is(err, response.ErrNoJSON) {
		code = "UPSTREAM_FORMAT_ERROR"
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal error in the AI analysis service.",
		"code":  code,
	})
}

// isRateLimitError checks if the error is a Gemini API rate limit error.
func isRateLimitError(err error) bool {
	if s, ok := status.FromError(err); ok {
		return s.Code() == codes.ResourceExhausted
	}
	errStr := err.Error()
	return strings.Contains(errStr, "ResourceExhausted") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "quota")
}
