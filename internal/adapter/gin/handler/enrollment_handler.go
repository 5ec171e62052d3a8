package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-enrollment-service/internal/usecase/enrollment"
)

// EnrollmentHandler handles HTTP requests for enrollment operations
type EnrollmentHandler struct {
	uc  enrollment.Usecase
	log *zap.Logger
}

// NewEnrollmentHandler creates a new EnrollmentHandler instance
func NewEnrollmentHandler(uc enrollment.Usecase, log *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		uc:  uc,
		log: log,
	}
}

// EnrollRequest represents the HTTP request body for enrolling a student
type EnrollRequest struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	CourseID uuid.UUID `json:"course_id" binding:"required"`
}

// EnrollmentResponse represents the HTTP response for enrollment data
type EnrollmentResponse struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	CourseID uuid.UUID `json:"course_id"`
}

// Enroll handles POST /enrollments
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid enroll request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.Enroll(c.Request.Context(), enrollment.EnrollRequest{
		UserID:   req.UserID,
		CourseID: req.CourseID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toEnrollmentResponse(resp))
}

// Deregister handles DELETE /enrollments/:id
func (h *EnrollmentHandler) Deregister(c *gin.Context) {
	id, ok := h.enrollmentID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.uc.Deregister(c.Request.Context(), enrollment.DeregisterRequest{ID: id}); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ForceDeregister handles DELETE /enrollments/admin/:id
func (h *EnrollmentHandler) ForceDeregister(c *gin.Context) {
	id, ok := h.enrollmentID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.uc.ForceDeregister(c.Request.Context(), enrollment.DeregisterRequest{ID: id}); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListForUser handles GET /enrollments/users/:user_id
func (h *EnrollmentHandler) ListForUser(c *gin.Context) {
	userID, ok := h.enrollmentID(c, c.Param("user_id"))
	if !ok {
		return
	}

	records, err := h.uc.ListForUser(c.Request.Context(), enrollment.ListForUserRequest{UserID: userID})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEnrollmentResponses(records))
}

// ListForCourse handles GET /enrollments/courses/:course_id
func (h *EnrollmentHandler) ListForCourse(c *gin.Context) {
	courseID, ok := h.enrollmentID(c, c.Param("course_id"))
	if !ok {
		return
	}

	records, err := h.uc.ListForCourse(c.Request.Context(), enrollment.ListForCourseRequest{CourseID: courseID})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEnrollmentResponses(records))
}

// ListAll handles GET /enrollments
func (h *EnrollmentHandler) ListAll(c *gin.Context) {
	records, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEnrollmentResponses(records))
}

func (h *EnrollmentHandler) enrollmentID(c *gin.Context, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		h.log.Warn("invalid ID", zap.String("id", raw), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "ID must be a valid UUID",
		})
		return uuid.Nil, false
	}
	return id, true
}

func toEnrollmentResponse(e *enrollment.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:       e.ID,
		UserID:   e.UserID,
		CourseID: e.CourseID,
	}
}

func toEnrollmentResponses(records []enrollment.Enrollment) []EnrollmentResponse {
	out := make([]EnrollmentResponse, len(records))
	for i := range records {
		out[i] = toEnrollmentResponse(&records[i])
	}
	return out
}
