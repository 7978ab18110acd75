package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyshelf/backend/internal/models"
	"go.uber.org/zap"
)

// TagService is the interface that wraps methods for Tags business logic.
type TagService interface {
	// Method ListTags retrieve all tags ordered by name.
	ListTags(ctx context.Context) ([]models.Tag, error)
	// Method CreateTag validates and creates a tag.
	//
	// If a tag with the same name exists, the "tag already exists" error will be returned.
	CreateTag(ctx context.Context, req *models.TagRequest) (*models.Tag, error)
	// Method UpdateTag replaces the name and color of a tag.
	UpdateTag(ctx context.Context, id int, req *models.TagRequest) (*models.Tag, error)
	// Method DeleteTag deletes a tag and its course links.
	DeleteTag(ctx context.Context, id int) error
	// Method Palette returns the colors offered for new tags.
	Palette() []string
}

// TagsHandler handles HTTP requests for tags
type TagsHandler struct {
	BaseHandler
	service TagService
}

// NewTagsHandler creates a new tags handler
func NewTagsHandler(svc TagService, logger *zap.Logger) *TagsHandler {
	return &TagsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all tag handler routes
func (h *TagsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/tags", func(r chi.Router) {
		r.Get("/", h.ListTags)
		r.Post("/", h.CreateTag)
		r.Get("/palette", h.Palette)
		r.Put("/{id}", h.UpdateTag)
		r.Delete("/{id}", h.DeleteTag)
	})
}

// ListTags handles GET /api/v1/tags
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} models.Tag
// @Failure 500 {object} map[string]string
// @Router /api/v1/tags [get]
func (h *TagsHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.ListTags(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "failed to get tags")
		return
	}

	h.respondJSON(w, http.StatusOK, tags)
}

// CreateTag handles POST /api/v1/tags
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param request body models.TagRequest true "Tag"
// @Success 201 {object} models.Tag
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/tags [post]
func (h *TagsHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req models.TagRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	tag, err := h.service.CreateTag(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "failed to create tag")
		return
	}

	h.respondJSON(w, http.StatusCreated, tag)
}

// UpdateTag handles PUT /api/v1/tags/{id}
// @Summary Update a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param request body models.TagRequest true "Tag"
// @Success 200 {object} models.Tag
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/tags/{id} [put]
func (h *TagsHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req models.TagRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	tag, err := h.service.UpdateTag(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "failed to update tag", zap.Int("id", id))
		return
	}

	h.respondJSON(w, http.StatusOK, tag)
}

// DeleteTag handles DELETE /api/v1/tags/{id}
// @Summary Delete a tag
// @Tags tags
// @Param id path int true "Tag ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/tags/{id} [delete]
func (h *TagsHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTag(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "failed to delete tag", zap.Int("id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Palette handles GET /api/v1/tags/palette
// @Summary Tag color palette
// @Tags tags
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/tags/palette [get]
func (h *TagsHandler) Palette(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Palette())
}
