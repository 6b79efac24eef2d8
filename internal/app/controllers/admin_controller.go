package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/app/models/dto"
	"github.com/mentora/mentora/internal/app/services"
	"github.com/mentora/mentora/internal/middleware"
)

// AdminController handles admin-only requests. Route-level middleware
// guarantees the caller holds the admin role before these run.
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GetAllUsers lists every registered user
func (c *AdminController) GetAllUsers(ctx *gin.Context) {
	users, err := c.adminService.ListAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if users == nil {
		users = []*models.User{}
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"users": users}, ""))
}

// DeleteUser hard-deletes a user and everything they own
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "User deleted"))
}

// DeleteCoursesByTeacher bulk-deletes a teacher's courses
func (c *AdminController) DeleteCoursesByTeacher(ctx *gin.Context) {
	teacherID, ok := parseIDParam(ctx, "teacherId")
	if !ok {
		return
	}

	deleted, err := c.adminService.DeleteCoursesByTeacher(ctx, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deletedCourses": deleted}, "Courses deleted"))
}
