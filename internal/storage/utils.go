package storage

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// GenerateFileName generates a UUID-based file name with the given extension
func GenerateFileName(extension string) string {
	name := uuid.NewString()
	if extension != "" && extension[0] != '.' {
		return name + "." + strings.ToLower(extension)
	}
	return name + strings.ToLower(extension)
}

// GenerateKey builds a storage key under prefix with a fresh file name
func GenerateKey(prefix, extension string) string {
	return path.Join(prefix, GenerateFileName(extension))
}

// sizeWriter counts the bytes written through it
type sizeWriter struct {
	size int64
}

// NewSizeWriter creates a new sizeWriter
func NewSizeWriter() *sizeWriter {
	return &sizeWriter{}
}

// Write implements io.Writer
func (sw *sizeWriter) Write(p []byte) (int, error) {
	sw.size += int64(len(p))
	return len(p), nil
}

// Size returns the number of bytes written so far
func (sw *sizeWriter) Size() int64 {
	return sw.size
}
