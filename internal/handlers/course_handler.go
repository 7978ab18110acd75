package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyshelf/backend/internal/models"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for Courses business logic.
type CourseService interface {
	// Method ListCourses retrieve courses matching "search" with their tags and progress.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	ListCourses(ctx context.Context, search string) ([]models.CourseListItem, error)
	// Method GetCourse retrieve a course with tags, ordered lessons and progress.
	//
	// If the course does not exist, the "course not found" error will be returned.
	GetCourse(ctx context.Context, id int) (*models.CourseDetail, error)
	// Method CreateCourse validates and stores a course with its lessons and tags.
	//
	// Returns the ID of the new course.
	// If the request is invalid, a services.ValidationError will be returned.
	CreateCourse(ctx context.Context, req *models.CourseRequest) (int, error)
	// Method UpdateCourse replaces a course, its lessons and its tags.
	UpdateCourse(ctx context.Context, id int, req *models.CourseRequest) error
	// Method UpdateCourseNotes replaces the notes of a course.
	UpdateCourseNotes(ctx context.Context, id int, notes string) error
	// Method DeleteCourse deletes a course with its lessons and media.
	DeleteCourse(ctx context.Context, id int) error
}

// CoursesHandler handles HTTP requests for courses
type CoursesHandler struct {
	BaseHandler
	service CourseService
}

// NewCoursesHandler creates a new courses handler
func NewCoursesHandler(svc CourseService, logger *zap.Logger) *CoursesHandler {
	return &CoursesHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all course handler routes
func (h *CoursesHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.ListCourses)
		r.Post("/", h.CreateCourse)
		r.Get("/{id}", h.GetCourse)
		r.Put("/{id}", h.UpdateCourse)
		r.Delete("/{id}", h.DeleteCourse)
		r.Put("/{id}/notes", h.UpdateCourseNotes)
	})
}

// ListCourses handles GET /api/v1/courses
// @Summary List courses
// @Description Get courses newest first with tags and completion progress
// @Tags courses
// @Produce json
// @Param search query string false "Case-insensitive match on title or topic"
// @Success 200 {array} models.CourseListItem
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses [get]
func (h *CoursesHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListCourses(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.handleServiceError(w, err, "failed to get courses")
		return
	}

	h.respondJSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /api/v1/courses/{id}
// @Summary Get course by ID
// @Description Get a course with its tags and lessons in order, each with completion state
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.CourseDetail
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses/{id} [get]
func (h *CoursesHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	course, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "failed to get course", zap.Int("id", id))
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// CreateCourse handles POST /api/v1/courses
// @Summary Create a course
// @Description Create a course with its lessons and tags in one step
// @Tags courses
// @Accept json
// @Produce json
// @Param request body models.CourseRequest true "Course"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses [post]
func (h *CoursesHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.CourseRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	id, err := h.service.CreateCourse(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "failed to create course")
		return
	}

	h.respondCreated(w, id, "course created successfully")
}

// UpdateCourse handles PUT /api/v1/courses/{id}
// @Summary Replace a course
// @Description Replace course fields, lessons and tags. Completion of replaced lessons is lost.
// @Tags courses
// @Accept json
// @Param id path int true "Course ID"
// @Param request body models.CourseRequest true "Course"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses/{id} [put]
func (h *CoursesHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req models.CourseRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdateCourse(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "failed to update course", zap.Int("id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateCourseNotes handles PUT /api/v1/courses/{id}/notes
// @Summary Replace course notes
// @Tags courses
// @Accept json
// @Param id path int true "Course ID"
// @Param request body models.UpdateNotesRequest true "Notes"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses/{id}/notes [put]
func (h *CoursesHandler) UpdateCourseNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateNotesRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdateCourseNotes(r.Context(), id, req.Notes); err != nil {
		h.handleServiceError(w, err, "failed to update course notes", zap.Int("id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCourse handles DELETE /api/v1/courses/{id}
// @Summary Delete a course
// @Tags courses
// @Param id path int true "Course ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/courses/{id} [delete]
func (h *CoursesHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCourse(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "failed to delete course", zap.Int("id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
