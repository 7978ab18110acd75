package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/studyshelf/backend/internal/models"
	"go.uber.org/zap"
)

// LibraryService is the interface that wraps methods for the combined course and book library.
type LibraryService interface {
	// Method GetLibrary retrieve courses and books matching "filter".
	//
	// If the filter is invalid, a services.ValidationError will be returned.
	GetLibrary(ctx context.Context, filter models.LibraryFilter) (*models.LibraryResponse, error)
	// Method GetTopics returns the distinct topics of courses and books, sorted.
	GetTopics(ctx context.Context) ([]string, error)
}

// LibraryHandler handles HTTP requests for the library
type LibraryHandler struct {
	BaseHandler
	service LibraryService
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(svc LibraryService, logger *zap.Logger) *LibraryHandler {
	return &LibraryHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all library handler routes
func (h *LibraryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/library", func(r chi.Router) {
		r.Get("/", h.GetLibrary)
		r.Get("/topics", h.GetTopics)
	})
}

// GetLibrary handles GET /api/v1/library
// @Summary Browse the library
// @Description Courses and books filtered by type, tags and search text. Selecting tags leaves out books.
// @Tags library
// @Produce json
// @Param type query string false "all (default), course or book"
// @Param tags query string false "Comma separated tag IDs; courses with any of them match"
// @Param search query string false "Case-insensitive match on title or topic"
// @Success 200 {object} models.LibraryResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/library [get]
func (h *LibraryHandler) GetLibrary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	tagIDs, err := parseIDList(query.Get("tags"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid tags parameter")
		return
	}

	filter := models.LibraryFilter{
		Type:   strings.ToLower(strings.TrimSpace(query.Get("type"))),
		TagIDs: tagIDs,
		Search: query.Get("search"),
	}

	library, err := h.service.GetLibrary(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "failed to get library")
		return
	}

	h.respondJSON(w, http.StatusOK, library)
}

// GetTopics handles GET /api/v1/library/topics
// @Summary List topics
// @Description Distinct non-empty topics of courses and books, sorted
// @Tags library
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string
// @Router /api/v1/library/topics [get]
func (h *LibraryHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.GetTopics(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "failed to get topics")
		return
	}

	h.respondJSON(w, http.StatusOK, topics)
}

// parseIDList parses "1,2,3"; blank items are skipped
func parseIDList(raw string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
