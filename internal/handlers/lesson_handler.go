package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyshelf/backend/internal/models"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for Lessons business logic.
type LessonService interface {
	// Method GetLesson retrieve a lesson with its completion state.
	//
	// If the lesson does not exist, the "lesson not found" error will be returned.
	GetLesson(ctx context.Context, id int) (*models.LessonWithProgress, error)
	// Method UpdateLessonNotes replaces the notes of a lesson.
	UpdateLessonNotes(ctx context.Context, id int, notes string) error
	// Method ToggleCompletion flips the completion state of a lesson and updates streak and monthly counters.
	//
	// If the lesson does not exist, the "lesson not found" error will be returned.
	ToggleCompletion(ctx context.Context, id int) (*models.ToggleCompletionResponse, error)
}

// LessonsHandler handles HTTP requests for lessons
type LessonsHandler struct {
	BaseHandler
	service LessonService
}

// NewLessonsHandler creates a new lessons handler
func NewLessonsHandler(svc LessonService, logger *zap.Logger) *LessonsHandler {
	return &LessonsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all lesson handler routes
func (h *LessonsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/lessons", func(r chi.Router) {
		r.Get("/{id}", h.GetLesson)
		r.Put("/{id}/notes", h.UpdateLessonNotes)
		r.Post("/{id}/toggle-complete", h.ToggleCompletion)
	})
}

// GetLesson handles GET /api/v1/lessons/{id}
// @Summary Get lesson by ID
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.LessonWithProgress
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id} [get]
func (h *LessonsHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	lesson, err := h.service.GetLesson(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "failed to get lesson", zap.Int("id", id))
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// UpdateLessonNotes handles PUT /api/v1/lessons/{id}/notes
// @Summary Replace lesson notes
// @Tags lessons
// @Accept json
// @Param id path int true "Lesson ID"
// @Param request body models.UpdateNotesRequest true "Notes"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id}/notes [put]
func (h *LessonsHandler) UpdateLessonNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateNotesRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdateLessonNotes(r.Context(), id, req.Notes); err != nil {
		h.handleServiceError(w, err, "failed to update lesson notes", zap.Int("id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleCompletion handles POST /api/v1/lessons/{id}/toggle-complete
// @Summary Toggle lesson completion
// @Description Mark a lesson completed, or remove its completion. Completing updates the daily streak and monthly counters.
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.ToggleCompletionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id}/toggle-complete [post]
func (h *LessonsHandler) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.service.ToggleCompletion(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "failed to toggle lesson completion", zap.Int("id", id))
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}
