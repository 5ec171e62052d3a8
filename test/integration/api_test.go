package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"course-enrollment-service/cmd/api/di"
	"course-enrollment-service/internal/adapter/gin/router"
	"course-enrollment-service/internal/config"
)

// newAPI builds a full router over a fresh container, so every test runs
// against its own empty store.
func newAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{
			HTTPPort:               "8080",
			ShutdownTimeoutSeconds: 10,
			CORSAllowOrigins:       []string{"*"},
			Environment:            "test",
		},
	}

	log := zaptest.NewLogger(t)
	container, err := di.NewContainer(cfg, log)
	require.NoError(t, err)

	return router.SetupRouter(container.UserHandler, container.CourseHandler, container.EnrollmentHandler, cfg, log)
}

func do(t *testing.T, r *gin.Engine, method, path, role string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-User-Role", role)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

type userBody struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type courseBody struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Code  string    `json:"code"`
}

type enrollmentBody struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	CourseID uuid.UUID `json:"course_id"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func createUser(t *testing.T, r *gin.Engine, name, email, role string) userBody {
	t.Helper()
	w := do(t, r, http.MethodPost, "/users", "", gin.H{"name": name, "email": email, "role": role})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var u userBody
	decode(t, w, &u)
	return u
}

func createCourse(t *testing.T, r *gin.Engine, title, code string) courseBody {
	t.Helper()
	w := do(t, r, http.MethodPost, "/courses", "admin", gin.H{"title": title, "code": code})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var c courseBody
	decode(t, w, &c)
	return c
}

func enroll(t *testing.T, r *gin.Engine, userID, courseID uuid.UUID) enrollmentBody {
	t.Helper()
	w := do(t, r, http.MethodPost, "/enrollments", "student", gin.H{"user_id": userID, "course_id": courseID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var e enrollmentBody
	decode(t, w, &e)
	return e
}

func TestWelcomeAndHealth(t *testing.T) {
	r := newAPI(t)

	w := do(t, r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Course Enrollment Management API")

	w = do(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserRegistration(t *testing.T) {
	r := newAPI(t)

	u := createUser(t, r, "Alice", "alice@example.com", "admin")
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "admin", u.Role)

	// Same email, different name: rejected.
	w := do(t, r, http.MethodPost, "/users", "", gin.H{"name": "Bob", "email": "alice@example.com", "role": "student"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var e errorBody
	decode(t, w, &e)
	assert.Equal(t, "Email already registered", e.Message)

	// Malformed email rejected at the boundary.
	w = do(t, r, http.MethodPost, "/users", "", gin.H{"name": "Bob", "email": "not-an-email", "role": "student"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown role rejected at the boundary.
	w = do(t, r, http.MethodPost, "/users", "", gin.H{"name": "Bob", "email": "bob@example.com", "role": "teacher"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/users/"+u.ID.String(), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/users/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/users", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var users []userBody
	decode(t, w, &users)
	assert.Len(t, users, 1)
}

func TestCourseLifecycle(t *testing.T) {
	r := newAPI(t)

	created := createCourse(t, r, "Backend", "BEP101")
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "BEP101", created.Code)

	// Same code twice fails.
	w := do(t, r, http.MethodPost, "/courses", "admin", gin.H{"title": "Backend again", "code": "BEP101"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var e errorBody
	decode(t, w, &e)
	assert.Equal(t, "Course with this code already exists", e.Message)

	// Partial update: title only, code untouched.
	w = do(t, r, http.MethodPut, "/courses/"+created.ID.String(), "admin", gin.H{"title": "Advanced Backend"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated courseBody
	decode(t, w, &updated)
	assert.Equal(t, "Advanced Backend", updated.Title)
	assert.Equal(t, "BEP101", updated.Code)

	// Reads are public.
	w = do(t, r, http.MethodGet, "/courses/"+created.ID.String(), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, "/courses", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete, then the id is gone and a second delete is a 404.
	w = do(t, r, http.MethodDelete, "/courses/"+created.ID.String(), "admin", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, r, http.MethodGet, "/courses/"+created.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, "/courses/"+created.ID.String(), "admin", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourseRoutesRequireAdmin(t *testing.T) {
	r := newAPI(t)

	w := do(t, r, http.MethodPost, "/courses", "student", gin.H{"title": "Backend", "code": "BEP101"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	var e errorBody
	decode(t, w, &e)
	assert.Equal(t, "must be an Admin", e.Message)

	// The role claim is also accepted as a query parameter.
	w = do(t, r, http.MethodPost, "/courses?role=admin", "", gin.H{"title": "Backend", "code": "BEP101"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAuthorizationPrecedesExistence(t *testing.T) {
	r := newAPI(t)

	// The target does not exist, but the caller is rejected on role alone.
	w := do(t, r, http.MethodDelete, "/courses/"+uuid.NewString(), "student", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodDelete, "/enrollments/admin/"+uuid.NewString(), "student", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodGet, "/enrollments/users/"+uuid.NewString(), "admin", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	var e errorBody
	decode(t, w, &e)
	assert.Equal(t, "must be a Student", e.Message)
}

func TestEnrollmentFlow(t *testing.T) {
	r := newAPI(t)

	alice := createUser(t, r, "Alice", "alice@example.com", "student")
	admin := createUser(t, r, "Root", "root@example.com", "admin")
	backend := createCourse(t, r, "Backend", "BEP101")

	created := enroll(t, r, alice.ID, backend.ID)
	assert.Equal(t, alice.ID, created.UserID)
	assert.Equal(t, backend.ID, created.CourseID)

	// Enrolling the same pair again fails.
	w := do(t, r, http.MethodPost, "/enrollments", "student", gin.H{"user_id": alice.ID, "course_id": backend.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var e errorBody
	decode(t, w, &e)
	assert.Equal(t, "Student already enrolled in this course", e.Message)

	// An admin user is not a valid enrollment target.
	w = do(t, r, http.MethodPost, "/enrollments", "student", gin.H{"user_id": admin.ID, "course_id": backend.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)
	decode(t, w, &e)
	assert.Equal(t, "Student not found or not a student", e.Message)

	// Unknown course.
	w = do(t, r, http.MethodPost, "/enrollments", "student", gin.H{"user_id": alice.ID, "course_id": uuid.New()})
	assert.Equal(t, http.StatusNotFound, w.Code)
	decode(t, w, &e)
	assert.Equal(t, "Course not found", e.Message)

	// Student view of own enrollments.
	w = do(t, r, http.MethodGet, "/enrollments/users/"+alice.ID.String(), "student", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var records []enrollmentBody
	decode(t, w, &records)
	assert.Len(t, records, 1)

	// Admin views per course and overall.
	w = do(t, r, http.MethodGet, "/enrollments/courses/"+backend.ID.String(), "admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &records)
	assert.Len(t, records, 1)

	w = do(t, r, http.MethodGet, "/enrollments", "admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &records)
	assert.Len(t, records, 1)
}

func TestListEnrollmentsForMissingAnchors(t *testing.T) {
	r := newAPI(t)

	// A missing anchor is a 404, not an empty list.
	w := do(t, r, http.MethodGet, "/enrollments/courses/"+uuid.NewString(), "admin", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/enrollments/users/"+uuid.NewString(), "student", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// An existing student with no enrollments gets an empty list.
	alice := createUser(t, r, "Alice", "alice@example.com", "student")
	w = do(t, r, http.MethodGet, "/enrollments/users/"+alice.ID.String(), "student", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var records []enrollmentBody
	decode(t, w, &records)
	assert.Empty(t, records)
}

func TestDeregistration(t *testing.T) {
	r := newAPI(t)

	alice := createUser(t, r, "Alice", "alice@example.com", "student")
	backend := createCourse(t, r, "Backend", "BEP101")
	created := enroll(t, r, alice.ID, backend.ID)

	w := do(t, r, http.MethodDelete, "/enrollments/"+created.ID.String(), "student", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Deleting again is a 404, not an idempotent success.
	w = do(t, r, http.MethodDelete, "/enrollments/"+created.ID.String(), "student", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Admin force removal of a fresh enrollment.
	again := enroll(t, r, alice.ID, backend.ID)
	w = do(t, r, http.MethodDelete, "/enrollments/admin/"+again.ID.String(), "admin", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteCourseLeavesEnrollments(t *testing.T) {
	r := newAPI(t)

	alice := createUser(t, r, "Alice", "alice@example.com", "student")
	backend := createCourse(t, r, "Backend", "BEP101")
	created := enroll(t, r, alice.ID, backend.ID)

	w := do(t, r, http.MethodDelete, "/courses/"+backend.ID.String(), "admin", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// No cascade: the enrollment still exists and still references the
	// deleted course.
	w = do(t, r, http.MethodGet, "/enrollments", "admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var records []enrollmentBody
	decode(t, w, &records)
	require.Len(t, records, 1)
	assert.Equal(t, created.ID, records[0].ID)
	assert.Equal(t, backend.ID, records[0].CourseID)

	// The student's own listing also keeps the stale record.
	w = do(t, r, http.MethodGet, "/enrollments/users/"+alice.ID.String(), "student", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &records)
	assert.Len(t, records, 1)
}

func TestInvalidIDsRejected(t *testing.T) {
	r := newAPI(t)

	w := do(t, r, http.MethodGet, "/users/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, "/courses/not-a-uuid", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, "/enrollments/not-a-uuid", "student", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
