package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func rateLimitedRouter(ipLimiter *IPRateLimiter, quota *DailyQuota) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/limited", RateLimitMiddleware(ipLimiter, quota), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestDailyQuota(t *testing.T) {
	q := NewDailyQuota(2)
	if !q.Allow() || !q.Allow() {
		t.Fatal("first two requests should pass")
	}
	if q.Allow() {
		t.Error("third request should be denied")
	}
	if q.Remaining() != 0 {
		t.Errorf("remaining = %d", q.Remaining())
	}
	if q.Count() != 2 {
		t.Errorf("count = %d", q.Count())
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("quota exhaustion returns 429 with Retry-After", func(t *testing.T) {
		r := rateLimitedRouter(NewIPRateLimiter(rate.Inf, 1), NewDailyQuota(1))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("first request status = %d", w.Code)
		}

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("second request status = %d, want 429", w.Code)
		}
		if w.Header().Get("Retry-After") == "" {
			t.Error("missing Retry-After header")
		}
	})

	t.Run("per-IP limiter throttles bursts", func(t *testing.T) {
		// One request per hour, burst of 1: the second request in a
		// row must be throttled.
		r := rateLimitedRouter(NewIPRateLimiter(rate.Every(time.Hour), 1), NewDailyQuota(100))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("first request status = %d", w.Code)
		}

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
		if w.Code != http.StatusTooManyRequests {
			t.Errorf("second request status = %d, want 429", w.Code)
		}
	})
}
