package handlers

import (
	"net/http"
	"time"

	"hackconnect-backend/internal/appwrite"
	"hackconnect-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db  *appwrite.Databases
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *appwrite.Databases, cfg *config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Overall health including document store connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  make(map[string]string),
	}

	var page struct {
		Total int64 `json:"total"`
	}
	queries := []string{appwrite.QueryLimit(1)}
	if err := h.db.ListDocuments(c.Request.Context(), h.cfg.CollectionHackathons, queries, &page); err != nil {
		response.Status = "unhealthy"
		response.Services["appwrite"] = "error: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	response.Services["appwrite"] = "connected"
	c.JSON(http.StatusOK, response)
}

// Ready reports whether the service can reach its backing store
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	var page struct {
		Total int64 `json:"total"`
	}
	queries := []string{appwrite.QueryLimit(1)}
	if err := h.db.ListDocuments(c.Request.Context(), h.cfg.CollectionHackathons, queries, &page); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live reports process liveness
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
