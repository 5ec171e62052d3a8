package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"course-enrollment-service/internal/adapter/gin/handler"
	"course-enrollment-service/internal/adapter/gin/middleware"
	"course-enrollment-service/internal/authz"
	"course-enrollment-service/internal/config"
)

// SetupRouter configures and returns a Gin router with all routes and
// middleware. Role gates run as route middleware, so authorization is
// decided before any handler touches the store.
func SetupRouter(
	userHandler *handler.UserHandler,
	courseHandler *handler.CourseHandler,
	enrollmentHandler *handler.EnrollmentHandler,
	cfg *config.Config,
	log *zap.Logger,
) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	corsConfig := cors.DefaultConfig()
	if len(cfg.App.CORSAllowOrigins) == 1 && cfg.App.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.App.CORSAllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.RoleHeader)
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Course Enrollment Management API",
		})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "course-enrollment-service",
		})
	})

	requireAdmin := middleware.RequireRole(authz.AdminOnly, log)
	requireStudent := middleware.RequireRole(authz.StudentOnly, log)

	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
	}

	courses := router.Group("/courses")
	{
		courses.GET("", courseHandler.ListCourses)
		courses.GET("/:id", courseHandler.GetCourse)
		courses.POST("", requireAdmin, courseHandler.CreateCourse)
		courses.PUT("/:id", requireAdmin, courseHandler.UpdateCourse)
		courses.DELETE("/:id", requireAdmin, courseHandler.DeleteCourse)
	}

	enrollments := router.Group("/enrollments")
	{
		enrollments.POST("", requireStudent, enrollmentHandler.Enroll)
		enrollments.DELETE("/:id", requireStudent, enrollmentHandler.Deregister)
		enrollments.GET("/users/:user_id", requireStudent, enrollmentHandler.ListForUser)

		enrollments.GET("", requireAdmin, enrollmentHandler.ListAll)
		enrollments.GET("/courses/:course_id", requireAdmin, enrollmentHandler.ListForCourse)
		enrollments.DELETE("/admin/:id", requireAdmin, enrollmentHandler.ForceDeregister)
	}

	return router
}
