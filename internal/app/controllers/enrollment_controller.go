package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/app/models/dto"
	"github.com/mentora/mentora/internal/app/services"
	"github.com/mentora/mentora/internal/middleware"
)

// EnrollmentController handles enrollment ledger requests
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll creates an enrollment for the authenticated user. A second
// identical request responds 409.
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	actorID, actorRole, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx, actorID, actorRole, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment, "Enrolled"))
}

// GetEnrolledCourses lists the courses a user is enrolled in
func (c *EnrollmentController) GetEnrolledCourses(ctx *gin.Context) {
	actorID, actorRole, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	courses, err := c.enrollmentService.GetEnrolledCourses(ctx, actorID, actorRole, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if courses == nil {
		courses = []*models.Course{}
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"enrolledCourses": courses}, ""))
}

// CancelSubscription removes the authenticated user's enrollment in the
// course named by the path.
func (c *EnrollmentController) CancelSubscription(ctx *gin.Context) {
	actorID, _, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	if err := c.enrollmentService.Cancel(ctx, actorID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Enrollment cancelled"))
}

// UpdateProgress sets the authenticated user's progress in a course
func (c *EnrollmentController) UpdateProgress(ctx *gin.Context) {
	actorID, _, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.ProgressUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.enrollmentService.UpdateProgress(ctx, actorID, courseID, *req.Progress); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Progress updated"))
}
