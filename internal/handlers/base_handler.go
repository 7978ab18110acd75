package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/studyshelf/backend/internal/services"
	"github.com/studyshelf/backend/internal/validation"
	"go.uber.org/zap"
)

// multipartMemory is the part of a multipart body kept in memory, the rest spills to temp files
const multipartMemory = 32 << 20

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondCreated sends the 201 body shared by create endpoints
func (h *BaseHandler) respondCreated(w http.ResponseWriter, id int, message string) {
	h.respondJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": message,
	})
}

// handleServiceError maps a service error to a status code.
// Only 5xx errors are logged, with "message" as the client-facing text.
func (h *BaseHandler) handleServiceError(w http.ResponseWriter, err error, message string, fields ...zap.Field) {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		h.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, validation.ErrTooLarge):
		h.respondError(w, http.StatusRequestEntityTooLarge, err.Error())
	case services.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case strings.Contains(err.Error(), "not found"):
		h.respondError(w, http.StatusNotFound, err.Error())
	case strings.Contains(err.Error(), "already exists"):
		h.respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error(message, append(fields, zap.Error(err))...)
		h.respondError(w, http.StatusInternalServerError, message)
	}
}

// parseID reads a positive integer path parameter
func (h *BaseHandler) parseID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// decodeJSON decodes the request body into dst, answering 400 on failure
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// queryInt reads an optional integer query parameter; missing means 0
func (h *BaseHandler) queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return value, true
}

// parseMultipart parses a multipart body, answering 413 or 400 on failure
func (h *BaseHandler) parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		h.logger.Info("failed to parse multipart form", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return false
	}
	return true
}

// formFile returns the file part "field" of a parsed multipart form.
// The caller closes the returned file.
func formFile(r *http.Request, field string) (*services.UploadedFile, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	return &services.UploadedFile{
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}, nil
}
