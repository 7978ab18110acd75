package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyshelf/backend/internal/models"
	"github.com/studyshelf/backend/internal/services"
	"go.uber.org/zap"
)

// BookService is the interface that wraps methods for Books business logic.
type BookService interface {
	// Method ListBooks retrieve books newest first.
	//
	// "search" parameter matches title or topic, "topic" parameter matches the topic exactly. Empty values disable the filter.
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	ListBooks(ctx context.Context, search, topic string) ([]models.Book, error)
	// Method GetBook retrieve a book by its ID.
	//
	// If the book does not exist, the "book not found" error will be returned.
	GetBook(ctx context.Context, id int) (*models.Book, error)
	// Method UploadBook validates and stores the PDF and optional cover, then saves the book.
	//
	// If the files or fields are invalid, a services.ValidationError will be returned.
	UploadBook(ctx context.Context, upload services.BookUpload) (*models.Book, error)
	// Method UpdateBook applies a partial update of title, topic and summary.
	UpdateBook(ctx context.Context, id int, req *models.UpdateBookRequest) error
	// Method UpdateBookNotes replaces the notes of a book.
	UpdateBookNotes(ctx context.Context, id int, notes string) error
	// Method DeleteBook deletes a book and its files.
	DeleteBook(ctx context.Context, id int) error
}

// BooksHandler handles HTTP requests for books
type BooksHandler struct {
	BaseHandler
	service BookService
}

// NewBooksHandler creates a new books handler
func NewBooksHandler(svc BookService, logger *zap.Logger) *BooksHandler {
	return &BooksHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all book handler routes
func (h *BooksHandler) RegisterRoutes(r chi.Router) {
	r.Route("/books", func(r chi.Router) {
		r.Get("/", h.ListBooks)
		r.Post("/", h.UploadBook)
		r.Get("/{id}", h.GetBook)
		r.Patch("/{id}", h.UpdateBook)
		r.Delete("/{id}", h.DeleteBook)
		r.Put("/{id}/notes", h.UpdateBookNotes)
	})
}

// ListBooks handles GET /api/v1/books
// @Summary List books
// @Description Get books newest first, optionally filtered by search text and topic
// @Tags books
// @Produce json
// @Param search query string false "Case-insensitive match on title or topic"
// @Param topic query string false "Exact topic"
// @Success 200 {array} models.Book
// @Failure 500 {object} map[string]string
// @Router /api/v1/books [get]
func (h *BooksHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListBooks(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("topic"))
	if err != nil {
		h.handleServiceError(w, err, "failed to get books")
		return
	}

	h.respondJSON(w, http.StatusOK, books)
}

// GetBook handles GET /api/v1/books/{id}
// @Summary Get book by ID
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} models.Book
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/books/{id} [get]
func (h *BooksHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	book, err := h.service.GetBook(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "failed to get book", zap.Int("id", id))
		return
	}

	h.respondJSON(w, http.StatusOK, book)
}

// UploadBook handles POST /api/v1/books
// @Summary Upload a book
// @Description Upload a PDF with an optional cover image. The page count is read from the PDF.
// @Tags books
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param topic formData string false "Topic"
// @Param summary formData string false "Summary"
// @Param pdf formData file true "PDF file, up to 50 MB"
// @Param cover formData file false "Cover image (jpeg or png), up to 10 MB"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/books [post]
func (h *BooksHandler) UploadBook(w http.ResponseWriter, r *http.Request) {
	if !h.parseMultipart(w, r) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	pdf, err := formFile(r, "pdf")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "pdf file is required")
		return
	}
	defer pdf.File.Close()

	upload := services.BookUpload{
		Title:   r.FormValue("title"),
		Topic:   r.FormValue("topic"),
		Summary: r.FormValue("summary"),
		PDF:     *pdf,
	}

	cover, err := formFile(r, "cover")
	switch {
	case err == nil:
		defer cover.File.Close()
		upload.Cover = cover
	case !errors.Is(err, http.ErrMissingFile):
		h.respondError(w, http.StatusBadRequest, "invalid cover file")
		return
	}

	book, err := h.service.UploadBook(r.Context(), upload)
	if err != nil {
		h.handleServiceError(w, err, "failed to upload book")
		return
	}

	h.respondCreated(w, book.ID, "book uploaded successfully")
}

// UpdateBook handles PATCH /api/v1/books/{id}
// @Summary Update book metadata
// @Description Partial update of title, topic and summary
// @Tags books
// @Accept json
// @Param id path int true "Book ID"
// @Param request body models.UpdateBookRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/books/{id} [patch]
func (h *BooksHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateBookRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdateBook(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "failed to update book", zap.Int("id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateBookNotes handles PUT /api/v1/books/{id}/notes
// @Summary Replace book notes
// @Tags books
// @Accept json
// @Param id path int true "Book ID"
// @Param request body models.UpdateNotesRequest true "Notes"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/books/{id}/notes [put]
func (h *BooksHandler) UpdateBookNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateNotesRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdateBookNotes(r.Context(), id, req.Notes); err != nil {
		h.handleServiceError(w, err, "failed to update book notes", zap.Int("id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteBook handles DELETE /api/v1/books/{id}
// @Summary Delete a book
// @Description Delete a book together with its PDF and cover files
// @Tags books
// @Param id path int true "Book ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/books/{id} [delete]
func (h *BooksHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBook(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "failed to delete book", zap.Int("id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
