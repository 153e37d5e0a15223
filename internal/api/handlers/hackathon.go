package handlers

import (
	"net/http"

	"hackconnect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HackathonHandler handles HTTP requests for hackathon listings
type HackathonHandler struct {
	hackathonService service.HackathonServiceInterface
	teamService      service.TeamServiceInterface
}

// NewHackathonHandler creates a new hackathon handler
func NewHackathonHandler(hackathonService service.HackathonServiceInterface, teamService service.TeamServiceInterface) *HackathonHandler {
	return &HackathonHandler{
		hackathonService: hackathonService,
		teamService:      teamService,
	}
}

// CreateHackathon handles POST /hackathons
// @Summary Create a hackathon
// @Tags hackathons
// @Accept json
// @Produce json
// @Param hackathon body service.CreateHackathonRequest true "Hackathon data"
// @Success 201 {object} map[string]interface{} "Created hackathon"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /hackathons [post]
func (h *HackathonHandler) CreateHackathon(c *gin.Context) {
	var req service.CreateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	hackathon, err := h.hackathonService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": hackathon})
}

// ListHackathons handles GET /hackathons
// @Summary List all hackathons
// @Tags hackathons
// @Produce json
// @Success 200 {object} map[string]interface{} "All hackathons"
// @Router /hackathons [get]
func (h *HackathonHandler) ListHackathons(c *gin.Context) {
	hackathons, err := h.hackathonService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "documents": hackathons})
}

// GetHackathon handles GET /hackathons/:id
// @Summary Get a hackathon by id
// @Tags hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} map[string]interface{} "Hackathon"
// @Failure 404 {object} map[string]interface{} "Hackathon not found"
// @Router /hackathons/{id} [get]
func (h *HackathonHandler) GetHackathon(c *gin.Context) {
	hackathon, err := h.hackathonService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": hackathon})
}

// Recommend handles POST /hackathons/recommendations
// @Summary Recommend hackathons matching the user's tags
// @Description Empty tag list returns every hackathon unfiltered
// @Tags hackathons
// @Accept json
// @Produce json
// @Param tags body []string true "User tags"
// @Success 200 {object} map[string]interface{} "Matching hackathons"
// @Router /hackathons/recommendations [post]
func (h *HackathonHandler) Recommend(c *gin.Context) {
	var userTags []string
	if err := c.ShouldBindJSON(&userTags); err != nil {
		respondBindError(c, err)
		return
	}

	matches, err := h.hackathonService.Recommend(c.Request.Context(), userTags)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(matches), "documents": matches})
}

// ListHackathonTeams handles GET /hackathons/:id/teams
// @Summary List teams registered for a hackathon
// @Tags hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} map[string]interface{} "Teams for the event"
// @Router /hackathons/{id}/teams [get]
func (h *HackathonHandler) ListHackathonTeams(c *gin.Context) {
	teams, total, err := h.teamService.ListByHackathon(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "teams": teams, "total": total})
}
