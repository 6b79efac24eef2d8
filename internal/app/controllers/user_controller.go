package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentora/mentora/internal/app/models/dto"
	"github.com/mentora/mentora/internal/app/services"
	"github.com/mentora/mentora/internal/middleware"
)

// UserController handles profile requests
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// UpdateProfile edits the profile named by the path. Non-admins can only
// edit themselves.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	actorID, actorRole, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	targetID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.userService.UpdateProfile(ctx, actorID, actorRole, targetID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user, "Profile updated"))
}
