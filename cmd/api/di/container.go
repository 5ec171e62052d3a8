package di

import (
	"fmt"

	"go.uber.org/zap"

	ginhandler "course-enrollment-service/internal/adapter/gin/handler"
	"course-enrollment-service/internal/config"
	"course-enrollment-service/internal/store"
	courseuc "course-enrollment-service/internal/usecase/course"
	enrollmentuc "course-enrollment-service/internal/usecase/enrollment"
	useruc "course-enrollment-service/internal/usecase/user"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	UserStore       *store.UserStore
	CourseStore     *store.CourseStore
	EnrollmentStore *store.EnrollmentStore

	UserUC       useruc.Usecase
	CourseUC     courseuc.Usecase
	EnrollmentUC enrollmentuc.Usecase

	UserHandler       *ginhandler.UserHandler
	CourseHandler     *ginhandler.CourseHandler
	EnrollmentHandler *ginhandler.EnrollmentHandler
}

// NewContainer creates and initializes all application dependencies. The
// stores are constructed here and owned by the container; nothing else in
// the process holds entity state.
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize the in-memory entity stores
	userStore := store.NewUserStore(l)
	courseStore := store.NewCourseStore(l)
	enrollmentStore := store.NewEnrollmentStore(l)

	// Initialize use cases
	userUC := useruc.New(userStore, l)
	courseUC := courseuc.New(courseStore, l)
	enrollmentUC := enrollmentuc.New(enrollmentStore, userStore, courseStore, l)

	// Initialize Gin handlers
	userHandler := ginhandler.NewUserHandler(userUC, l)
	courseHandler := ginhandler.NewCourseHandler(courseUC, l)
	enrollmentHandler := ginhandler.NewEnrollmentHandler(enrollmentUC, l)

	return &Container{
		Config: cfg,
		Logger: l,

		UserStore:       userStore,
		CourseStore:     courseStore,
		EnrollmentStore: enrollmentStore,

		UserUC:       userUC,
		CourseUC:     courseUC,
		EnrollmentUC: enrollmentUC,

		UserHandler:       userHandler,
		CourseHandler:     courseHandler,
		EnrollmentHandler: enrollmentHandler,
	}, nil
}
