// Package storage keeps uploaded blobs on local disk or in MinIO / S3
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a blob does not exist
var ErrNotFound = errors.New("file not found")

// localStorage implements blob storage on the local filesystem
type localStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a new localStorage rooted at basePath.
// Public URLs are baseURL + "/media/" + key.
func NewLocalStorage(basePath, baseURL string) (*localStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &localStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// resolve maps a storage key to a path inside basePath.
// Keys are slash separated; ".." segments cannot escape the base directory.
func (s *localStorage) resolve(key string) (string, error) {
	cleaned := strings.TrimPrefix(path.Clean("/"+key), "/")
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.basePath, filepath.FromSlash(cleaned)), nil
}

// Put writes r to key, replacing any existing file
func (s *localStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		os.Remove(fullPath)
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(fullPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}

// OpenFile opens a stored file for use with http.ServeContent
func (s *localStorage) OpenFile(key string) (*os.File, error) {
	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, ErrNotFound
	}

	return file, nil
}

// Delete removes a stored file
func (s *localStorage) Delete(ctx context.Context, key string) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}

	err = os.Remove(fullPath)
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// URL returns the public URL of key
func (s *localStorage) URL(key string) string {
	return s.baseURL + "/media/" + key
}

// KeyFromURL reverses URL for files owned by this storage
func (s *localStorage) KeyFromURL(url string) (string, bool) {
	return trimKeyPrefix(url, s.baseURL+"/media/")
}

func trimKeyPrefix(url, prefix string) (string, bool) {
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}
