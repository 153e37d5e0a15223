package handlers

import (
	"net/http"

	"hackconnect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// JudgingHandler handles HTTP requests for judging scores
type JudgingHandler struct {
	judgingService service.JudgingServiceInterface
}

// NewJudgingHandler creates a new judging handler
func NewJudgingHandler(judgingService service.JudgingServiceInterface) *JudgingHandler {
	return &JudgingHandler{judgingService: judgingService}
}

// SubmitScore handles POST /judging/score
// @Summary Submit a judging score
// @Description The total is computed server-side as the sum of the three sub-scores
// @Tags judging
// @Accept json
// @Produce json
// @Param score body service.SubmitScoreRequest true "Score data"
// @Success 201 {object} map[string]interface{} "Stored score with total"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /judging/score [post]
func (h *JudgingHandler) SubmitScore(c *gin.Context) {
	var req service.SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	score, err := h.judgingService.SubmitScore(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Score submitted", "total": score.Total, "data": score})
}
