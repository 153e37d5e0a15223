package handlers

import (
	"net/http"

	"hackconnect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for merged user profiles
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile handles GET /users/:id
// @Summary Get a merged user profile
// @Description Profile document fields merged with directory email and display name
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} service.ProfileResponse "Merged profile"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}

// UpdateProfile handles PUT /users/:id
// @Summary Update a user profile
// @Description Splits the payload between the directory name update and the profile document update
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param profile body service.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} service.ProfileResponse "Fresh merged profile"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}
