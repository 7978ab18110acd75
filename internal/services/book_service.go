package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/studyshelf/backend/internal/models"
	"github.com/studyshelf/backend/internal/pdfinfo"
	"github.com/studyshelf/backend/internal/validation"
	"go.uber.org/zap"
)

// BookRepository is the interface that wraps methods for Books table data access
type BookRepository interface {
	// Method GetAll retrieves books newest first.
	//
	// "filter" narrows the list by search text and exact topic.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	// Method GetByID retrieves a book by its ID.
	//
	// If the book does not exist, the "book not found" error will be returned.
	GetByID(ctx context.Context, id int) (*models.Book, error)
	// Method ExistsByID checks if a book with the given ID exists.
	//
	// If some error will occur during data check, the error will be returned together with "false" value.
	ExistsByID(ctx context.Context, id int) (bool, error)
	// Method Create inserts a new book and sets its ID.
	//
	// If some error will occur during data creation, the error will be returned.
	Create(ctx context.Context, book *models.Book) error
	// Method Update applies a partial update of title, topic and summary.
	//
	// "id" parameter is used to identify the book.
	// "req" parameter holds the fields to change; nil fields are kept.
	//
	// If some error will occur during data update, the error will be returned.
	Update(ctx context.Context, id int, req *models.UpdateBookRequest) error
	// Method UpdateNotes replaces the personal notes of a book.
	//
	// If some error will occur during data update, the error will be returned.
	UpdateNotes(ctx context.Context, id int, notes string) error
	// Method Delete deletes a book by its ID.
	//
	// If some error will occur during data deletion, the error will be returned.
	Delete(ctx context.Context, id int) error
	// Method Count returns the number of books.
	Count(ctx context.Context) (int, error)
	// Method GetTopics returns distinct non-empty book topics in alphabetical order.
	GetTopics(ctx context.Context) ([]string, error)
}

// BookUpload is the input of UploadBook
type BookUpload struct {
	Title   string
	Topic   string
	Summary string
	PDF     UploadedFile
	// Cover is optional
	Cover *UploadedFile
}

type bookService struct {
	repo    BookRepository
	storage FileStorage
	cache   DashboardCache
	logger  *zap.Logger
}

// NewBookService creates a new book service
func NewBookService(repo BookRepository, storage FileStorage, cache DashboardCache, logger *zap.Logger) *bookService {
	return &bookService{
		repo:    repo,
		storage: storage,
		cache:   cache,
		logger:  logger,
	}
}

// ListBooks returns books matching search (title or topic) and topic, newest first
func (s *bookService) ListBooks(ctx context.Context, search, topic string) ([]models.Book, error) {
	filter := models.BookFilter{
		Search: strings.TrimSpace(search),
		Topic:  strings.TrimSpace(topic),
	}

	books, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get books: %w", err)
	}
	return books, nil
}

// GetBook returns a book by ID
func (s *bookService) GetBook(ctx context.Context, id int) (*models.Book, error) {
	if id <= 0 {
		return nil, invalidf("invalid book id")
	}
	return s.repo.GetByID(ctx, id)
}

// UploadBook validates and stores the PDF and optional cover, counts pages and saves the book.
// Blobs written before a failure are removed.
func (s *bookService) UploadBook(ctx context.Context, upload BookUpload) (*models.Book, error) {
	title := strings.TrimSpace(upload.Title)
	if title == "" {
		return nil, invalidf("title is required")
	}

	if err := validation.Validate(validation.KindBookPDF, upload.PDF.ContentType, upload.PDF.Filename, upload.PDF.Size); err != nil {
		return nil, invalid(err)
	}
	if upload.Cover != nil {
		if err := validation.Validate(validation.KindBookCover, upload.Cover.ContentType, upload.Cover.Filename, upload.Cover.Size); err != nil {
			return nil, invalid(fmt.Errorf("cover: %w", err))
		}
	}

	pageCount, err := pdfinfo.PageCount(upload.PDF.File, upload.PDF.Size)
	if err != nil {
		return nil, invalid(err)
	}

	pdf, err := storeUpload(ctx, s.storage, validation.KindBookPDF, upload.PDF)
	if err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:     title,
		Topic:     strings.TrimSpace(upload.Topic),
		Summary:   strings.TrimSpace(upload.Summary),
		PDFURL:    pdf.URL,
		PageCount: pageCount,
	}

	var coverKey string
	if upload.Cover != nil {
		cover, err := storeUpload(ctx, s.storage, validation.KindBookCover, *upload.Cover)
		if err != nil {
			deleteBlob(ctx, s.storage, s.logger, pdf.Key)
			return nil, err
		}
		coverKey = cover.Key
		book.CoverImageURL = cover.URL
	}

	if err := s.repo.Create(ctx, book); err != nil {
		deleteBlob(ctx, s.storage, s.logger, pdf.Key)
		if coverKey != "" {
			deleteBlob(ctx, s.storage, s.logger, coverKey)
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	s.cache.Invalidate(ctx)
	return book, nil
}

// UpdateBook applies a partial update of book metadata
func (s *bookService) UpdateBook(ctx context.Context, id int, req *models.UpdateBookRequest) error {
	if id <= 0 {
		return invalidf("invalid book id")
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return invalidf("title cannot be empty")
		}
		req.Title = &title
	}
	if req.Title == nil && req.Topic == nil && req.Summary == nil {
		return invalidf("no fields to update")
	}

	return s.repo.Update(ctx, id, req)
}

// UpdateBookNotes replaces the notes of a book
func (s *bookService) UpdateBookNotes(ctx context.Context, id int, notes string) error {
	if id <= 0 {
		return invalidf("invalid book id")
	}
	return s.repo.UpdateNotes(ctx, id, notes)
}

// DeleteBook deletes the book row and then its blobs, best effort
func (s *bookService) DeleteBook(ctx context.Context, id int) error {
	if id <= 0 {
		return invalidf("invalid book id")
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	deleteBlobByURL(ctx, s.storage, s.logger, book.PDFURL)
	deleteBlobByURL(ctx, s.storage, s.logger, book.CoverImageURL)

	s.cache.Invalidate(ctx)
	return nil
}
