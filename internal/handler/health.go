package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Advisor   string `json:"advisor"`
	Store     string `json:"store"`
}

// HandleHealth returns the health status of the service. Used for the Cloud
// Run liveness probe.
func (h *Handlers) HandleHealth(c *gin.Context) {
	advisorStatus := "unavailable"
	if h.Advisor != nil {
		advisorStatus = "ready"
	}
	storeStatus := "ready"
	if h.Store == nil || h.Store.Ping() != nil {
		storeStatus = "unavailable"
	}

	status := "healthy"
	if advisorStatus != "ready" || storeStatus != "ready" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Advisor:   advisorStatus,
		Store:     storeStatus,
	})
}

// HandleReadiness returns whether the service is ready to accept traffic.
// Stricter than health: all dependencies must be up.
func (h *Handlers) HandleReadiness(c *gin.Context) {
	if h.Advisor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "advisor_not_initialized",
		})
		return
	}
	if h.Store == nil || h.Store.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "store_unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
