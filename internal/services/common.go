// Package services holds the business rules of the study library
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/studyshelf/backend/internal/models"
	"go.uber.org/zap"
)

// ValidationError marks errors caused by client input
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// invalidf builds a ValidationError from a format string
func invalidf(format string, args ...any) error {
	return &ValidationError{Err: fmt.Errorf(format, args...)}
}

// invalid wraps err into a ValidationError
func invalid(err error) error {
	return &ValidationError{Err: err}
}

// IsValidationError reports whether err was caused by client input
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// FileStorage is the interface that wraps blob storage operations
type FileStorage interface {
	// Put stores the content of r under key.
	//
	// "size" is the number of bytes in r, or -1 when unknown.
	// "contentType" is saved with the blob where the backend supports it.
	//
	// If some error will occur during write, the error will be returned.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Delete removes the blob stored under key.
	//
	// If the blob does not exist storage.ErrNotFound may be returned.
	Delete(ctx context.Context, key string) error
	// URL returns the public URL of key
	URL(key string) string
	// KeyFromURL reverses URL.
	//
	// Returns false when url does not point into this storage.
	KeyFromURL(url string) (string, bool)
}

// DashboardCache stores the computed dashboard.
// Implementations never fail: errors are logged and treated as misses.
type DashboardCache interface {
	Get(ctx context.Context) (*models.Dashboard, bool)
	Set(ctx context.Context, dashboard *models.Dashboard)
	Invalidate(ctx context.Context)
}

// UploadedFile is one file part of a multipart request
type UploadedFile struct {
	File        multipart.File
	Filename    string
	ContentType string
	Size        int64
}

// deleteBlobByURL removes the blob behind url when it belongs to storage.
// Failures are logged only.
func deleteBlobByURL(ctx context.Context, storage FileStorage, logger *zap.Logger, url string) {
	if url == "" {
		return
	}
	key, ok := storage.KeyFromURL(url)
	if !ok {
		return
	}
	deleteBlob(ctx, storage, logger, key)
}

func deleteBlob(ctx context.Context, storage FileStorage, logger *zap.Logger, key string) {
	if err := storage.Delete(ctx, key); err != nil {
		logger.Warn("failed to delete blob", zap.String("key", key), zap.Error(err))
	}
}
