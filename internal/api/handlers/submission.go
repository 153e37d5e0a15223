package handlers

import (
	"net/http"

	"hackconnect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler handles HTTP requests for project submissions
type SubmissionHandler struct {
	submissionService service.SubmissionServiceInterface
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService service.SubmissionServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// CreateSubmission handles POST /submissions
// @Summary Submit a final project
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body service.CreateSubmissionRequest true "Submission data"
// @Success 201 {object} map[string]interface{} "Created submission"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req service.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	submission, err := h.submissionService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Project submitted successfully", "data": submission})
}

// ListSubmissions handles GET /submissions/:hackathonId
// @Summary List submissions for a hackathon with team names resolved
// @Tags submissions
// @Produce json
// @Param hackathonId path string true "Hackathon ID"
// @Success 200 {object} map[string]interface{} "Enriched submissions, most recent first"
// @Router /submissions/{hackathonId} [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.submissionService.ListByHackathon(c.Request.Context(), c.Param("hackathonId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submissions": submissions})
}
