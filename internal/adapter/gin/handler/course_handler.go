package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-enrollment-service/internal/usecase/course"
)

// CourseHandler handles HTTP requests for course operations
type CourseHandler struct {
	uc  course.Usecase
	log *zap.Logger
}

// NewCourseHandler creates a new CourseHandler instance
func NewCourseHandler(uc course.Usecase, log *zap.Logger) *CourseHandler {
	return &CourseHandler{
		uc:  uc,
		log: log,
	}
}

// CreateCourseRequest represents the HTTP request body for creating a course
type CreateCourseRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
	Code  string `json:"code" binding:"required,min=1,max=50"`
}

// UpdateCourseRequest represents a partial course update. Absent fields are
// left untouched.
type UpdateCourseRequest struct {
	Title *string `json:"title" binding:"omitempty,min=1,max=200"`
	Code  *string `json:"code" binding:"omitempty,min=1,max=50"`
}

// CourseResponse represents the HTTP response for course data
type CourseResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Code  string    `json:"code"`
}

// CreateCourse handles POST /courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create course request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.CreateCourse(c.Request.Context(), course.CreateCourseRequest{
		Title: req.Title,
		Code:  req.Code,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCourseResponse(resp))
}

// GetCourse handles GET /courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := h.courseID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetCourse(c.Request.Context(), course.GetCourseRequest{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCourseResponse(resp))
}

// ListCourses handles GET /courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.uc.ListCourses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]CourseResponse, len(courses))
	for i := range courses {
		out[i] = toCourseResponse(&courses[i])
	}
	c.JSON(http.StatusOK, out)
}

// UpdateCourse handles PUT /courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := h.courseID(c)
	if !ok {
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update course request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.UpdateCourse(c.Request.Context(), course.UpdateCourseRequest{
		ID:    id,
		Title: req.Title,
		Code:  req.Code,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCourseResponse(resp))
}

// DeleteCourse handles DELETE /courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := h.courseID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteCourse(c.Request.Context(), course.DeleteCourseRequest{ID: id}); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CourseHandler) courseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.log.Warn("invalid course ID", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Course ID must be a valid UUID",
		})
		return uuid.Nil, false
	}
	return id, true
}

func toCourseResponse(cr *course.Course) CourseResponse {
	return CourseResponse{
		ID:    cr.ID,
		Title: cr.Title,
		Code:  cr.Code,
	}
}
