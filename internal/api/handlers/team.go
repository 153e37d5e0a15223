package handlers

import (
	"net/http"

	"hackconnect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team membership operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Create a team; the leader is always inserted into the member list
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} map[string]interface{} "Created team"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Upstream failure"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": team})
}

// ListTeams handles GET /teams
// @Summary List all teams with members resolved to display names
// @Tags teams
// @Produce json
// @Success 200 {object} map[string]interface{} "Enriched teams"
// @Failure 500 {object} map[string]interface{} "Upstream failure"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListEnriched(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "documents": teams, "total": len(teams)})
}

// JoinTeam handles POST /teams/join
// @Summary Request to join a team
// @Tags teams
// @Accept json
// @Produce json
// @Param action body service.TeamActionRequest true "Team and user"
// @Success 200 {object} map[string]interface{} "Join request sent"
// @Failure 400 {object} map[string]interface{} "Already a member or request pending"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/join [post]
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	var req service.TeamActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.teamService.Join(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Join request sent"})
}

// ApproveRequest handles POST /teams/approve
// @Summary Approve a pending join request
// @Tags teams
// @Accept json
// @Produce json
// @Param action body service.TeamRequestActionRequest true "Team, leader and target user"
// @Success 200 {object} map[string]interface{} "Member approved"
// @Failure 403 {object} map[string]interface{} "Caller is not the leader"
// @Failure 404 {object} map[string]interface{} "Team or request not found"
// @Router /teams/approve [post]
func (h *TeamHandler) ApproveRequest(c *gin.Context) {
	var req service.TeamRequestActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.teamService.Approve(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Member approved"})
}

// RejectRequest handles POST /teams/reject
// @Summary Reject a pending join request
// @Tags teams
// @Accept json
// @Produce json
// @Param action body service.TeamRequestActionRequest true "Team, leader and target user"
// @Success 200 {object} map[string]interface{} "Request rejected"
// @Failure 403 {object} map[string]interface{} "Caller is not the leader"
// @Failure 404 {object} map[string]interface{} "Team or request not found"
// @Router /teams/reject [post]
func (h *TeamHandler) RejectRequest(c *gin.Context) {
	var req service.TeamRequestActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.teamService.Reject(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Request rejected"})
}

// LeaveTeam handles POST /teams/leave
// @Summary Leave a team
// @Description A leaving leader disbands the team outright
// @Tags teams
// @Accept json
// @Produce json
// @Param action body service.TeamActionRequest true "Team and user"
// @Success 200 {object} map[string]interface{} "Left team or team disbanded"
// @Failure 400 {object} map[string]interface{} "Not a member"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/leave [post]
func (h *TeamHandler) LeaveTeam(c *gin.Context) {
	var req service.TeamActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	disbanded, err := h.teamService.Leave(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Left team"
	if disbanded {
		message = "Leader left. Team disbanded."
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// DeleteTeam handles DELETE /teams/delete
// @Summary Delete a team
// @Tags teams
// @Accept json
// @Produce json
// @Param action body service.TeamActionRequest true "Team and requesting user"
// @Success 200 {object} map[string]interface{} "Team deleted"
// @Failure 403 {object} map[string]interface{} "Caller is not the leader"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/delete [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	var req service.TeamActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Team deleted"})
}
