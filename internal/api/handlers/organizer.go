package handlers

import (
	"net/http"

	"hackconnect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizerHandler handles HTTP requests for organizer analytics and broadcasts
type OrganizerHandler struct {
	organizerService service.OrganizerServiceInterface
}

// NewOrganizerHandler creates a new organizer handler
func NewOrganizerHandler(organizerService service.OrganizerServiceInterface) *OrganizerHandler {
	return &OrganizerHandler{organizerService: organizerService}
}

// GetStats handles GET /organizer/:hackathonId/stats
// @Summary Dashboard analytics for a hackathon
// @Description Four counting queries run concurrently; a failed metric degrades to zero and is listed under degraded
// @Tags organizer
// @Produce json
// @Param hackathonId path string true "Hackathon ID"
// @Success 200 {object} service.StatsResponse "Dashboard counters"
// @Router /organizer/{hackathonId}/stats [get]
func (h *OrganizerHandler) GetStats(c *gin.Context) {
	stats, err := h.organizerService.GetStats(c.Request.Context(), c.Param("hackathonId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"total_registrants":    stats.TotalRegistrants,
		"teams_formed":         stats.TeamsFormed,
		"submissions_received": stats.SubmissionsReceived,
		"looking_for_team":     stats.LookingForTeam,
		"degraded":             stats.Degraded,
	})
}

// Announce handles POST /organizer/:hackathonId/announce
// @Summary Broadcast an announcement to participants
// @Tags organizer
// @Accept json
// @Produce json
// @Param hackathonId path string true "Hackathon ID"
// @Param announcement body service.AnnouncementRequest true "Announcement data"
// @Success 201 {object} map[string]interface{} "Announcement broadcasted"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /organizer/{hackathonId}/announce [post]
func (h *OrganizerHandler) Announce(c *gin.Context) {
	var req service.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.organizerService.Announce(c.Request.Context(), c.Param("hackathonId"), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Announcement broadcasted"})
}
