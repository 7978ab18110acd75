package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/studyshelf/backend/internal/models"
	"github.com/studyshelf/backend/internal/storage"
	"github.com/studyshelf/backend/internal/validation"
)

// uploadService stores standalone media used by the course editor
type uploadService struct {
	storage FileStorage
}

// NewUploadService creates a new upload service
func NewUploadService(storage FileStorage) *uploadService {
	return &uploadService{
		storage: storage,
	}
}

// Upload validates file against the rules of kind and stores it under a fresh name
func (s *uploadService) Upload(ctx context.Context, kindParam string, file UploadedFile) (*models.UploadResult, error) {
	kind, err := validation.ParseKind(kindParam)
	if err != nil {
		return nil, invalid(err)
	}

	return storeUpload(ctx, s.storage, kind, file)
}

// Delete removes a previously uploaded file of the given kind
func (s *uploadService) Delete(ctx context.Context, kindParam, filename string) error {
	kind, err := validation.ParseKind(kindParam)
	if err != nil {
		return invalid(err)
	}

	if filename == "" || filename == "." || filename == ".." || strings.ContainsAny(filename, `/\`) {
		return invalidf("invalid file name %q", filename)
	}

	rule, err := validation.RuleFor(kind)
	if err != nil {
		return invalid(err)
	}

	err = s.storage.Delete(ctx, path.Join(rule.Prefix, filename))
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("file not found")
	}
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// storeUpload validates file for kind and writes it to store.
// The reported size is the number of bytes actually streamed.
func storeUpload(ctx context.Context, store FileStorage, kind validation.Kind, file UploadedFile) (*models.UploadResult, error) {
	if err := validation.Validate(kind, file.ContentType, file.Filename, file.Size); err != nil {
		return nil, invalid(err)
	}

	rule, err := validation.RuleFor(kind)
	if err != nil {
		return nil, invalid(err)
	}

	if _, err := file.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind file: %w", err)
	}

	key := storage.GenerateKey(rule.Prefix, strings.ToLower(filepath.Ext(file.Filename)))
	contentType := validation.NormalizeContentType(file.ContentType)

	sizeWriter := storage.NewSizeWriter()
	teeReader := io.TeeReader(file.File, sizeWriter)

	if err := store.Put(ctx, key, teeReader, file.Size, contentType); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	return &models.UploadResult{
		URL:         store.URL(key),
		Key:         key,
		Size:        sizeWriter.Size(),
		ContentType: contentType,
	}, nil
}
