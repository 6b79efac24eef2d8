package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/app/models/dto"
	"github.com/mentora/mentora/internal/app/services"
	"github.com/mentora/mentora/internal/middleware"
	"github.com/mentora/mentora/internal/pkg/helpers"
)

// CourseController handles course catalog requests
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// UploadCourse creates a course owned by the authenticated teacher
func (c *CourseController) UploadCourse(ctx *gin.Context) {
	actorID, _, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course, "Course created"))
}

// GetAllCourses lists the catalog, paginated
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	page, size := helpers.ParsePageParams(ctx)

	courses, pagination, err := c.courseService.GetAllCourses(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if courses == nil {
		courses = []*models.Course{}
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PagedResponse{
		Items:      courses,
		Pagination: pagination,
	}, ""))
}

// GetCourseDetail returns a single course by id
func (c *CourseController) GetCourseDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, ""))
}

// GetCoursesByTeacher lists a teacher's courses
func (c *CourseController) GetCoursesByTeacher(ctx *gin.Context) {
	teacherID, ok := parseIDParam(ctx, "teacherId")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCoursesByTeacher(ctx, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if courses == nil {
		courses = []*models.Course{}
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"courses": courses}, ""))
}

// UpdateCourse overwrites a course owned by the caller
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	actorID, actorRole, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, actorID, actorRole, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, "Course updated"))
}

// DeleteCourse removes a course owned by the caller
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	actorID, actorRole, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, actorID, actorRole, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Course deleted"))
}
