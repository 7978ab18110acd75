package handlers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/studyshelf/backend/internal/models"
	"github.com/studyshelf/backend/internal/services"
	"github.com/studyshelf/backend/internal/storage"
	"go.uber.org/zap"
)

// UploadService is the interface that wraps methods for standalone media uploads.
type UploadService interface {
	// Method Upload validates a file against the rules of "kind" and stores it under a fresh name.
	//
	// If the kind or file is invalid, a services.ValidationError will be returned.
	Upload(ctx context.Context, kind string, file services.UploadedFile) (*models.UploadResult, error)
	// Method Delete removes a previously uploaded file.
	//
	// If the file does not exist, the "file not found" error will be returned.
	Delete(ctx context.Context, kind, filename string) error
}

// FileOpener opens stored blobs for download
type FileOpener interface {
	OpenFile(key string) (*os.File, error)
}

// UploadsHandler handles HTTP requests for uploads and serves stored media
type UploadsHandler struct {
	BaseHandler
	service UploadService
	files   FileOpener
}

// NewUploadsHandler creates a new uploads handler.
// "files" may be nil when blobs are served by the object storage itself.
func NewUploadsHandler(svc UploadService, files FileOpener, logger *zap.Logger) *UploadsHandler {
	return &UploadsHandler{
		service:     svc,
		files:       files,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers the upload API routes
func (h *UploadsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/uploads", func(r chi.Router) {
		r.Post("/{kind}", h.Upload)
		r.Delete("/{kind}/{filename}", h.Delete)
	})
}

// RegisterMediaRoutes registers the public download route
func (h *UploadsHandler) RegisterMediaRoutes(r chi.Router) {
	if h.files == nil {
		return
	}
	r.Get("/media/*", h.ServeMedia)
}

// Upload handles POST /api/v1/uploads/{kind}
// @Summary Upload a media file
// @Description Upload a course cover, lesson image or lesson video. The returned URL is used as cover_image_url or content_url.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param kind path string true "book_pdf, book_cover, course_cover, lesson_image or lesson_video"
// @Param file formData file true "File to upload"
// @Success 201 {object} models.UploadResult
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/uploads/{kind} [post]
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	if !h.parseMultipart(w, r) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, err := formFile(r, "file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.File.Close()

	result, err := h.service.Upload(r.Context(), kind, *file)
	if err != nil {
		h.handleServiceError(w, err, "failed to upload file", zap.String("kind", kind))
		return
	}

	h.respondJSON(w, http.StatusCreated, result)
}

// Delete handles DELETE /api/v1/uploads/{kind}/{filename}
// @Summary Delete an uploaded file
// @Tags uploads
// @Param kind path string true "Upload kind"
// @Param filename path string true "File name"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/uploads/{kind}/{filename} [delete]
func (h *UploadsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	filename := chi.URLParam(r, "filename")

	if err := h.service.Delete(r.Context(), kind, filename); err != nil {
		h.handleServiceError(w, err, "failed to delete file", zap.String("kind", kind), zap.String("filename", filename))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ServeMedia handles GET /media/*
// @Summary Download a stored file
// @Description Serve a stored file. Range requests are supported so videos can seek.
// @Tags uploads
// @Produce application/octet-stream
// @Param Range header string false "Range"
// @Success 200 "File content"
// @Success 206 "Partial file content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /media/{key} [get]
func (h *UploadsHandler) ServeMedia(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if key == "" {
		h.respondError(w, http.StatusNotFound, "file not found")
		return
	}

	file, err := h.files.OpenFile(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "file not found")
			return
		}
		h.logger.Error("failed to open file", zap.Error(err), zap.String("key", key))
		h.respondError(w, http.StatusInternalServerError, "failed to open file")
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		h.logger.Error("failed to get file info", zap.Error(err), zap.String("key", key))
		h.respondError(w, http.StatusInternalServerError, "failed to get file info")
		return
	}

	http.ServeContent(w, r, path.Base(key), info.ModTime(), file)
}
