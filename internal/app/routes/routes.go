package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mentora/mentora/internal/app/controllers"
	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/app/models/dto"
	"github.com/mentora/mentora/internal/middleware"
)

// SetupRouter configures all application routes. The path layout under
// /api/users is kept compatible with the original frontend; protection
// levels follow the role model, not the legacy routes.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	userController *controllers.UserController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api/users")

	// --- Public routes ---
	api.POST("/signup", authController.Signup)
	api.POST("/login", authController.Login)

	// Course catalog is readable without an account
	api.GET("/get-all-courses", courseController.GetAllCourses)
	api.GET("/course-detail/:id", courseController.GetCourseDetail)
	api.GET("/course-by-teacher/:teacherId", courseController.GetCoursesByTeacher)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Enrollment ledger; per-user access checks live in the service
		authenticated.POST("/enroll", enrollmentController.Enroll)
		authenticated.GET("/enrolled-courses/:userId", enrollmentController.GetEnrolledCourses)
		authenticated.DELETE("/cancel-subscription/:courseId", enrollmentController.CancelSubscription)
		authenticated.PUT("/update-progress/:courseId", enrollmentController.UpdateProgress)

		// Profile editing, self or admin
		authenticated.PUT("/update-profile/:id", userController.UpdateProfile)

		// Course mutation; ownership is checked in the service so admins
		// can also update/delete
		authenticated.PUT("/course-update/:id", courseController.UpdateCourse)
		authenticated.DELETE("/course-delete/:id", courseController.DeleteCourse)

		// Only teachers create courses
		teacherProtected := authenticated.Group("")
		teacherProtected.Use(authMiddleware.RoleRequired(models.RoleTeacher))
		{
			teacherProtected.POST("/course-upload", courseController.UploadCourse)
		}

		// Admin-only routes
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminProtected.GET("/admin/all-users", adminController.GetAllUsers)
			adminProtected.DELETE("/admin/delete-courses-by-teacher/:teacherId", adminController.DeleteCoursesByTeacher)
			adminProtected.DELETE("/delete-user/:id", adminController.DeleteUser)
		}
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
