package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/learnhub/internal/app/controllers"
	"github.com/oguzk/learnhub/internal/app/models"
	"github.com/oguzk/learnhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	lessonController *controllers.LessonController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Public Catalog routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
		courses.GET("/:id/lessons", lessonController.ListLessons)
	}
	lessons := v1.Group("/lessons")
	{
		lessons.GET("/:id", lessonController.GetLesson)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile routes (self only)
		users := authenticated.Group("/users/me")
		{
			users.GET("", userController.GetProfile)
			users.PATCH("", userController.UpdateProfile)
			users.PUT("/password", userController.ChangePassword)
			users.DELETE("", userController.DeleteAccount)
			users.GET("/courses", courseController.MyCourses)
		}

		// Course writes. Creation is role-gated at the router; ownership of
		// updates and deletes is checked in the service layer.
		instructorOnly := authMiddleware.RoleRequired(models.RoleInstructor)
		coursesProtected := authenticated.Group("/courses")
		{
			coursesProtected.POST("", instructorOnly, courseController.CreateCourse)
			coursesProtected.PATCH("/:id", courseController.UpdateCourse)
			coursesProtected.DELETE("/:id", courseController.DeleteCourse)
			coursesProtected.POST("/:id/lessons", instructorOnly, lessonController.CreateLesson)
			coursesProtected.POST("/:id/enroll", enrollmentController.Enroll)
		}

		lessonsProtected := authenticated.Group("/lessons")
		{
			lessonsProtected.PATCH("/:id", lessonController.UpdateLesson)
			lessonsProtected.DELETE("/:id", lessonController.DeleteLesson)
		}

		// Enrollment routes, always scoped to the acting user
		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.GET("", enrollmentController.ListEnrollments)
			enrollments.GET("/:id", enrollmentController.GetEnrollment)
			enrollments.PATCH("/:id", enrollmentController.UpdateProgress)
			enrollments.PATCH("/:id/progress", enrollmentController.UpdateProgress)
			enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
		}
	}
}
